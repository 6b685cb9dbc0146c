// Package api contains the client-side transport for the recipe platform.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the backend REST surface: authentication and password reset, the
//     current-user resources, recipes with filters and favorites, categories,
//     statistics, and shopping lists with their items.
//  2. A concrete HTTP implementation (see HTTPClient) that speaks JSON,
//     injects the bearer token on every request, and maps response status
//     codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrForbidden,
// ErrNotFound. Other non-2xx responses surface as *APIError carrying the
// human-readable message extracted from the error body.
//
// No request is retried and no token is refreshed automatically; an expired
// credential is only discovered when an authenticated call fails.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
