// Package fs provides file-based document sources and record stores.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/gradeforge"
)

// Ensure DocumentSource implements gradeforge.DocumentSource at compile time.
var _ gradeforge.DocumentSource = (*DocumentSource)(nil)

// DocumentSource reads already-downloaded documents from disk.
type DocumentSource struct {
	// Root resolves relative names. Empty means the working directory.
	Root string

	// Kind, when set, is used for every document instead of inferring the
	// kind from the file name.
	Kind gradeforge.DocumentKind
}

// NewDocumentSource creates a DocumentSource rooted at root.
func NewDocumentSource(root string) *DocumentSource {
	return &DocumentSource{Root: root}
}

// FetchDocument reads the named file.
func (s *DocumentSource) FetchDocument(ctx context.Context, name string) (*gradeforge.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if !filepath.IsAbs(path) && s.Root != "" {
		path = filepath.Join(s.Root, path)
	}

	kind := s.Kind
	if kind == gradeforge.KindUnknown {
		kind = gradeforge.InferDocumentKind(name)
	}
	if kind == gradeforge.KindUnknown {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "cannot infer document kind of %q; name must contain one of %v", name, gradeforge.DocumentKinds)
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, gradeforge.Errorf(gradeforge.ENOTFOUND, "document %q not found", name)
	} else if err != nil {
		return nil, err
	}

	return &gradeforge.Document{Name: name, Kind: kind, Content: content}, nil
}
