// Package ledger supplies the host-side resource accounting the extension
// region pays through: a rent schedule that prices account size, and a bank
// that moves lamports between funded accounts.
package ledger
