// Package driver constructs and pools LinkedIn automation browsers through
// Playwright.
//
// The package is built around three pieces:
//
//  1. Runtime: owns the shared playwright process and launches browsers
//     configured for unattended, low-fingerprint operation
//  2. Driver: one live browser bound to at most one session token
//  3. Pool: the token-keyed registry that creates drivers lazily, reuses
//     them across scraping calls, and tears them down explicitly
//
// # Lifecycle
//
// A driver exists only after a session resolves it:
//
//  1. Create: Pool.GetOrCreate constructs a browser and authenticates it
//     with the session's cookie; only an authenticated driver is registered
//  2. Reuse: subsequent resolves for the same token return the same driver
//  3. Close: Pool.Close (or CloseAll at shutdown) tears it down; teardown
//     errors are logged and never block deregistration
//
// Concurrent resolves for one token collapse into a single construction;
// resolves for different tokens proceed independently. The pool's lock
// covers only its map, never a browser call.
package driver
