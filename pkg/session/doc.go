// Package session maps opaque session tokens to stored LinkedIn credentials
// and composes the driver pool and authentication flow behind one facade.
//
// # Architecture
//
//  1. Store: process-lifetime map from token to canonical cookie; knows
//     nothing about drivers
//  2. Manager: the facade callers use; creates and replaces sessions,
//     resolves pooled drivers, and closes both halves as a unit
//  3. Classify: converts any failure into the structured outcome payload
//     surfaced to callers
//
// # Credentials
//
// Cookies are stored canonically as "li_at=<value>" no matter how the
// caller supplied them; NormalizeCookie produces the stored/raw pair and
// RawValue recovers the bare value for the browser.
//
// # Replacement semantics
//
// Re-registering an existing token overwrites its credential. The pooled
// driver for that token is evicted before the new cookie is written, so no
// resolve can reuse a browser authenticated under the stale credential.
package session
