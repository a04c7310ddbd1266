// Package types holds the small value types shared by the extension core and
// its host-side collaborators: the typed error taxonomy with its stable
// program error codes, and the 32-byte Pubkey identity.
//
// Design goals:
//   - Typed errors with stable categories (ownership/malformed/resource/lifecycle).
//   - Error codes that survive a round trip through a host runtime.
//   - No dependencies beyond the standard library and a base58 codec.
package types
