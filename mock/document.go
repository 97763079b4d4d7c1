package mock

import (
	"context"

	"github.com/fwojciec/gradeforge"
)

var _ gradeforge.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of gradeforge.DocumentSource.
type DocumentSource struct {
	FetchDocumentFn func(ctx context.Context, name string) (*gradeforge.Document, error)
}

func (s *DocumentSource) FetchDocument(ctx context.Context, name string) (*gradeforge.Document, error) {
	return s.FetchDocumentFn(ctx, name)
}
