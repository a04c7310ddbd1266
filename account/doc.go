// Package account provides host-side account buffers for the extension
// region: Mem, an in-memory account, and File, an account persisted in a
// single file and mapped read-write so its data can grow in place.
//
// # File format
//
//	0x00  4   magic "ACCT"
//	0x04  4   format version (u32, currently 1)
//	0x08  32  account key
//	0x28  32  owner program key
//	0x48  8   lamports (u64)
//	0x50  ... account data
//
// The data length is the file size minus the 80-byte header. Growing the
// data extends the file; the operating system zero-fills the new bytes.
//
// Both account types implement stateext.Account and ledger.Funded.
package account
