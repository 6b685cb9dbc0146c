// Package services contains the per-screen application services of the
// recipe client. Each screen object owns a reconciler for its collection or
// detail resource, created on screen activation and discarded when the
// screen closes; there is no cross-screen cache. All mutations go through
// the reconciler so the mutate-then-re-fetch ordering holds everywhere.
package services
