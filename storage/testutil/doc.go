// Package testutil provides test doubles for the blobkit storage
// contract: an in-memory Storage fake with failure injection, and an
// HTTP server that emulates the remote side of signed URLs, including
// expiry enforcement.
//
// It is intended for tests of code that consumes the storage contract,
// so such tests need no cloud credentials.
package testutil
