// Package batch drives one extraction batch. Documents are dispatched to
// their extractors in order and share one ExtractionContext, so term,
// instructor and department identities are resolved across the whole run.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/bloom"
)

// Runner runs extraction batches. An extractor may be nil if the batch
// never contains documents of its kind.
type Runner struct {
	Catalog  gradeforge.CatalogExtractor
	Sections gradeforge.SectionExtractor
	Exams    gradeforge.ExamExtractor
	Books    gradeforge.BookstoreExtractor
	Grades   gradeforge.GradeExtractor

	// Seen holds fingerprints of documents extracted by earlier runs.
	// Documents it probably holds are still extracted but counted as
	// repeated. Fingerprints of this run are added to it. May be nil.
	Seen *bloom.Filter

	Policy gradeforge.Policy
	Logger *slog.Logger
}

// Result holds the outcome of a batch.
type Result struct {
	BatchID   string
	Records   *gradeforge.RecordSet
	Documents int
	Skipped   int
	Repeated  int
	Warnings  int
}

// Run extracts every document and finalizes the deduplicated streams.
// Byte-identical documents are extracted once. The first fatal error
// aborts the batch and is returned as is, so record errors keep their
// partial fields.
func (r *Runner) Run(ctx context.Context, docs []*gradeforge.Document) (*Result, error) {
	ectx := gradeforge.NewExtractionContext(r.Logger, r.Policy)
	logger := ectx.Logger()

	firstSeen := make(map[uint64]string)

	rs := &gradeforge.RecordSet{}
	result := &Result{BatchID: ectx.ID, Records: rs}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := doc.Validate(); err != nil {
			return nil, err
		}

		fp := xxhash.Sum64(doc.Content)
		if original, ok := firstSeen[fp]; ok {
			logger.Debug("skipping duplicate document", "document", doc.Name, "duplicateOf", original)
			result.Skipped++
			continue
		}
		firstSeen[fp] = doc.Name
		if r.Seen != nil && r.Seen.TestAndAdd(fp) {
			logger.Info("document probably extracted by an earlier run", "document", doc.Name)
			result.Repeated++
		}

		n, err := r.extract(ectx, doc, rs)
		if err != nil {
			return nil, err
		}
		logger.Debug("extracted document", "document", doc.Name, "kind", doc.Kind, "records", n)
		result.Documents++
	}

	if err := ectx.Finalize(rs); err != nil {
		return nil, err
	}
	result.Warnings = ectx.Warnings()
	return result, nil
}

// extract appends the records of doc to rs and returns how many it added.
func (r *Runner) extract(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document, rs *gradeforge.RecordSet) (int, error) {
	switch doc.Kind {
	case gradeforge.KindCatalog:
		if r.Catalog == nil {
			break
		}
		courses, err := r.Catalog.ExtractCatalog(ectx, doc)
		if err != nil {
			return 0, wrap(doc, err)
		}
		rs.Courses = append(rs.Courses, courses...)
		return len(courses), nil

	case gradeforge.KindSections:
		if r.Sections == nil {
			break
		}
		sections, err := r.Sections.ExtractSections(ectx, doc)
		if err != nil {
			return 0, wrap(doc, err)
		}
		rs.Sections = append(rs.Sections, sections...)
		return len(sections), nil

	case gradeforge.KindExam:
		if r.Exams == nil {
			break
		}
		exams, err := r.Exams.ExtractExams(doc)
		if err != nil {
			return 0, wrap(doc, err)
		}
		rs.Exams = append(rs.Exams, exams...)
		return len(exams), nil

	case gradeforge.KindBookstore:
		if r.Books == nil {
			break
		}
		books, err := r.Books.ExtractBooks(doc)
		if err != nil {
			return 0, wrap(doc, err)
		}
		rs.Books = append(rs.Books, books...)
		return len(books), nil

	case gradeforge.KindGrades:
		if r.Grades == nil {
			break
		}
		grades, err := r.Grades.ExtractGrades(ectx, doc)
		if err != nil {
			return 0, wrap(doc, err)
		}
		rs.Grades = append(rs.Grades, grades...)
		return len(grades), nil
	}
	return 0, gradeforge.Errorf(gradeforge.EINVALID, "document %q: no extractor for %s documents", doc.Name, doc.Kind)
}

// wrap names the document unless the error is a record error, which
// already carries it.
func wrap(doc *gradeforge.Document, err error) error {
	var re *gradeforge.RecordError
	if errors.As(err, &re) {
		return err
	}
	return fmt.Errorf("%s: %w", doc.Name, err)
}
