package bloom_test

import (
	"bytes"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/gradeforge/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	catalog := xxhash.Sum64String("<table>catalog</table>")
	sections := xxhash.Sum64String("<table>sections</table>")

	assert.False(t, f.Test(catalog))

	f.Add(catalog)

	assert.True(t, f.Test(catalog))
	assert.False(t, f.Test(sections))
}

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	fp := xxhash.Sum64String("report")

	assert.False(t, f.TestAndAdd(fp), "first sighting")
	assert.True(t, f.TestAndAdd(fp), "second sighting")
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add(1)
	f.Add(2)
	f.Add(3)
	f.Add(3)

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)
	for i := range uint64(numItems) {
		f.Add(xxhash.Sum64(binaryKey(i)))
	}

	falsePositives := 0
	for i := range uint64(testProbes) {
		if f.Test(xxhash.Sum64(binaryKey(numItems + i))) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}

func binaryKey(i uint64) []byte {
	b := make([]byte, 8)
	for j := range b {
		b[j] = byte(i >> (8 * j))
	}
	return b
}

func TestFilter_WriteToReadFilter(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	fp := xxhash.Sum64String("sections-201808-CSCE.html")
	f.Add(fp)

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	got, err := bloom.ReadFilter(&buf)
	require.NoError(t, err)
	assert.True(t, got.Test(fp))
	assert.False(t, got.Test(xxhash.Sum64String("exam.html")))
}

func TestReadFilter_RejectsTruncatedInput(t *testing.T) {
	t.Parallel()

	_, err := bloom.ReadFilter(bytes.NewReader([]byte{0, 1}))

	assert.Error(t, err)
}
