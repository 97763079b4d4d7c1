package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Fingerprints Across Runs
// Extraction runs share a fingerprint file to notice repeated documents

func TestSeenFilter_MissingFileYieldsEmptyFilter(t *testing.T) {
	t.Parallel()

	// Given no fingerprint file
	path := filepath.Join(t.TempDir(), "seen.bloom")

	// When I read it
	filter, err := fs.ReadSeenFilter(path)

	// Then an empty filter is returned
	require.NoError(t, err)
	assert.False(t, filter.Test(xxhash.Sum64String("exam")))
}

func TestSeenFilter_RoundTripsFingerprints(t *testing.T) {
	t.Parallel()

	// Given a filter holding one fingerprint
	path := filepath.Join(t.TempDir(), "seen.bloom")
	filter, err := fs.ReadSeenFilter(path)
	require.NoError(t, err)
	filter.Add(xxhash.Sum64String("exam"))

	// When I write and read it back
	require.NoError(t, fs.WriteSeenFilter(path, filter))
	got, err := fs.ReadSeenFilter(path)

	// Then the fingerprint is still present and no temp file remains
	require.NoError(t, err)
	assert.True(t, got.Test(xxhash.Sum64String("exam")))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSeenFilter_CorruptFileIsInvalid(t *testing.T) {
	t.Parallel()

	// Given a fingerprint file with garbage
	path := filepath.Join(t.TempDir(), "seen.bloom")
	require.NoError(t, os.WriteFile(path, []byte("xx"), 0644))

	// When I read it
	_, err := fs.ReadSeenFilter(path)

	// Then it is reported as invalid
	assert.Equal(t, gradeforge.EINVALID, gradeforge.ErrorCode(err))
	assert.Contains(t, gradeforge.ErrorMessage(err), "seen.bloom")
}
