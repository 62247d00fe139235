package engine

import "time"

// Index maps each address to the ordered sequence of its observed
// timestamps. Insertion order is the order of appearance in the input;
// duplicates are kept. The build phase has exactly one writer and no
// concurrent readers, so the type carries no lock. After the build it is
// read-only and safe to share across aggregation workers.
type Index struct {
	timestamps map[string][]time.Time
	keys       []string // first-seen order
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		timestamps: make(map[string][]time.Time),
	}
}

// Insert appends the record's timestamp to the sequence keyed by its
// address, creating the key on first sight. No filtering happens here:
// every valid record is indexed regardless of the configured ranges.
func (idx *Index) Insert(rec Record) {
	seq, ok := idx.timestamps[rec.Address]
	if !ok {
		idx.keys = append(idx.keys, rec.Address)
	}
	idx.timestamps[rec.Address] = append(seq, rec.Timestamp)
}

// Keys returns the addresses in first-seen order.
func (idx *Index) Keys() []string {
	return idx.keys
}

// Timestamps returns the ordered timestamp sequence for an address.
func (idx *Index) Timestamps(address string) []time.Time {
	return idx.timestamps[address]
}

// Len returns the number of distinct addresses.
func (idx *Index) Len() int {
	return len(idx.keys)
}
