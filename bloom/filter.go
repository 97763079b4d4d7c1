// Package bloom provides a probabilistic set of document fingerprints.
package bloom

import (
	"encoding/binary"
	"io"

	"github.com/bits-and-blooms/bloom/v3"
)

// Default sizing for a filter shared across extraction runs.
const (
	DefaultExpected = 100000
	DefaultFPRate   = 0.01
)

// Filter wraps a Bloom filter keyed by 64-bit content fingerprints.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected fingerprints
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

func key(fp uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, fp)
}

// Add adds a fingerprint to the filter.
func (f *Filter) Add(fp uint64) {
	f.f.Add(key(fp))
}

// Test returns true if the fingerprint might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(fp uint64) bool {
	return f.f.Test(key(fp))
}

// TestAndAdd reports whether fp might already be present, then adds it.
func (f *Filter) TestAndAdd(fp uint64) bool {
	return f.f.TestAndAdd(key(fp))
}

// EstimatedCount returns the approximate number of fingerprints in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// ReadFilter decodes a filter written by WriteTo.
func ReadFilter(r io.Reader) (*Filter, error) {
	f := &bloom.BloomFilter{}
	if _, err := f.ReadFrom(r); err != nil {
		return nil, err
	}
	return &Filter{f: f}, nil
}

// WriteTo encodes the filter to w.
func (f *Filter) WriteTo(w io.Writer) (int64, error) {
	return f.f.WriteTo(w)
}
