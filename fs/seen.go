package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/bloom"
)

// ReadSeenFilter reads the document fingerprint filter at path. A missing
// file yields an empty filter with default sizing.
func ReadSeenFilter(path string) (*bloom.Filter, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return bloom.NewFilter(bloom.DefaultExpected, bloom.DefaultFPRate), nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	filter, err := bloom.ReadFilter(f)
	if err != nil {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "fingerprint file %q: %v", path, err)
	}
	return filter, nil
}

// WriteSeenFilter replaces the fingerprint filter at path. The filter is
// written to a temporary file first and renamed into place.
func WriteSeenFilter(path string, filter *bloom.Filter) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := filter.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
