// Package store persists session state as named JSON blob slots, the same
// four slots the office tool has always used.
package store

// Slot names. Each slot holds one independently keyed JSON blob.
const (
	SlotProfile    = "schoolProfile"
	SlotCategories = "feeCategories"
	SlotHistory    = "receiptHistory"
	SlotQueue      = "printQueue"
)

// Store loads and saves whole slots. Load reports found=false when the slot
// has never been written, in which case callers fall back to defaults.
type Store interface {
	Load(slot string, into any) (found bool, err error)
	Save(slot string, v any) error
}
