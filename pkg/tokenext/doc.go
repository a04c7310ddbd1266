// Package tokenext defines concrete extension types for a token-style base
// record: transfer fees, a display label, a close authority and an interest
// rate. Each type encodes itself field by field into its fixed length and
// is tagged by a Kind.
package tokenext
