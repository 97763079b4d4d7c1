package batch

import (
	"context"

	"github.com/fwojciec/gradeforge"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents read at once by FetchAll.
const DefaultConcurrency = 8

// FetchAll reads the named documents from src with up to concurrency
// reads in flight and returns them in name order. Extraction itself stays
// sequential; only the reads overlap. The first failure cancels the rest.
func FetchAll(ctx context.Context, src gradeforge.DocumentSource, names []string, concurrency int) ([]*gradeforge.Document, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	docs := make([]*gradeforge.Document, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range names {
		g.Go(func() error {
			doc, err := src.FetchDocument(gctx, name)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
