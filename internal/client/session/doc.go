// Package session is the single process-wide authority for "who is logged
// in" and "what credential authorizes requests".
//
// The Manager owns the credential pair and the current user record. It
// moves between three states:
//
//	Unauthenticated → Authenticated   on successful login or token adoption
//	                                  followed by a successful user fetch
//	Loading → Authenticated           on successful startup user fetch
//	Loading → Unauthenticated         on startup fetch failure
//	Authenticated → Unauthenticated   on logout or any failed re-authentication
//
// Startup begins in Loading when a persisted credential pair exists, else
// in Unauthenticated. The refresh token is persisted alongside the access
// token but never exercised for renewal: an expired credential is only
// discovered when an authenticated call fails, which forces a logout.
//
// Failures never propagate as errors past the manager boundary: every
// public operation returns a Result, and user-facing outcomes are reported
// through the Notifier. No request is retried.
package session
