package model

// ReferenceKind is the classification of a source reference
type ReferenceKind int

const (
	// ReferenceInvalid means the reference matches no recognized shape
	ReferenceInvalid ReferenceKind = iota

	// ReferenceSingle means the reference names exactly one item
	ReferenceSingle

	// ReferenceCollection means the reference names a playlist
	ReferenceCollection
)

// String returns the string representation of ReferenceKind
func (k ReferenceKind) String() string {
	switch k {
	case ReferenceSingle:
		return "single"
	case ReferenceCollection:
		return "collection"
	default:
		return "invalid"
	}
}

// IsValid returns true for single-item and collection references
func (k ReferenceKind) IsValid() bool {
	return k == ReferenceSingle || k == ReferenceCollection
}
