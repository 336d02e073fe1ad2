package domain

// ReferenceSequence is a DNA record loaded from the reference store.
// Empty Organism or GeneName means the header did not carry one.
type ReferenceSequence struct {
	// ID is the record identifier (first token of the FASTA header).
	ID string

	// Organism is the recognised species name, if any.
	Organism string

	// GeneName is the first parenthesised token of the header, if any.
	GeneName string

	// Description is the full header line without the leading '>'.
	Description string

	// Bases is the uppercase nucleotide sequence.
	Bases string
}

// ReferenceSet is an ordered, read-only snapshot of reference sequences.
// The zero value is an empty set.
type ReferenceSet struct {
	records []ReferenceSequence
}

// NewReferenceSet copies records into a new immutable set.
func NewReferenceSet(records []ReferenceSequence) ReferenceSet {
	cp := make([]ReferenceSequence, len(records))
	copy(cp, records)
	return ReferenceSet{records: cp}
}

// Len returns the number of records.
func (s ReferenceSet) Len() int {
	return len(s.records)
}

// At returns the i-th record in store order.
func (s ReferenceSet) At(i int) ReferenceSequence {
	return s.records[i]
}

// Find returns the record with the given ID.
func (s ReferenceSet) Find(id string) (ReferenceSequence, bool) {
	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], true
		}
	}
	return ReferenceSequence{}, false
}

// IDs returns up to limit record IDs in store order.
// A non-positive limit returns every ID.
func (s ReferenceSet) IDs(limit int) []string {
	n := len(s.records)
	if limit > 0 && limit < n {
		n = limit
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = s.records[i].ID
	}
	return ids
}

// StoreStatus describes the loaded reference store.
type StoreStatus struct {
	// Backend is the store implementation in use.
	Backend StoreBackend

	// Path is the FASTA file or database the store was loaded from.
	Path string

	// Exists reports whether Path is present on disk.
	Exists bool

	// Records is the number of loaded reference sequences.
	Records int
}
