// Package catalog holds the reference entities the storefront joins against:
// categories, breeds, origins and care services. All four share the same
// soft-delete convention ("delete" flips status to retired, rows are never
// removed) so breed/origin names stay resolvable on historical orders.
package catalog

// Lookup entity status values.
const (
	StatusRetired = 0
	StatusActive  = 1
)
