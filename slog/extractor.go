// Package slog provides logging decorators for the gradeforge services.
package slog

import (
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/gradeforge"
)

var (
	_ gradeforge.CatalogExtractor   = (*LoggingCatalogExtractor)(nil)
	_ gradeforge.SectionExtractor   = (*LoggingSectionExtractor)(nil)
	_ gradeforge.ExamExtractor      = (*LoggingExamExtractor)(nil)
	_ gradeforge.BookstoreExtractor = (*LoggingBookstoreExtractor)(nil)
	_ gradeforge.GradeExtractor     = (*LoggingGradeExtractor)(nil)
)

// LoggingCatalogExtractor wraps a CatalogExtractor with logging.
type LoggingCatalogExtractor struct {
	next   gradeforge.CatalogExtractor
	logger *slog.Logger
}

// NewLoggingCatalogExtractor creates a new LoggingCatalogExtractor.
func NewLoggingCatalogExtractor(next gradeforge.CatalogExtractor, logger *slog.Logger) *LoggingCatalogExtractor {
	return &LoggingCatalogExtractor{next: next, logger: logger}
}

// ExtractCatalog delegates to the wrapped extractor and logs the operation.
func (e *LoggingCatalogExtractor) ExtractCatalog(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) (courses []*gradeforge.Course, err error) {
	defer func(begin time.Time) {
		logExtraction(e.logger, ectx, "catalog extraction", doc, len(courses), begin, err)
	}(time.Now())
	return e.next.ExtractCatalog(ectx, doc)
}

// LoggingSectionExtractor wraps a SectionExtractor with logging.
type LoggingSectionExtractor struct {
	next   gradeforge.SectionExtractor
	logger *slog.Logger
}

// NewLoggingSectionExtractor creates a new LoggingSectionExtractor.
func NewLoggingSectionExtractor(next gradeforge.SectionExtractor, logger *slog.Logger) *LoggingSectionExtractor {
	return &LoggingSectionExtractor{next: next, logger: logger}
}

// ExtractSections delegates to the wrapped extractor and logs the operation.
func (e *LoggingSectionExtractor) ExtractSections(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) (sections []*gradeforge.Section, err error) {
	defer func(begin time.Time) {
		logExtraction(e.logger, ectx, "section extraction", doc, len(sections), begin, err)
	}(time.Now())
	return e.next.ExtractSections(ectx, doc)
}

// LoggingExamExtractor wraps an ExamExtractor with logging.
type LoggingExamExtractor struct {
	next   gradeforge.ExamExtractor
	logger *slog.Logger
}

// NewLoggingExamExtractor creates a new LoggingExamExtractor.
func NewLoggingExamExtractor(next gradeforge.ExamExtractor, logger *slog.Logger) *LoggingExamExtractor {
	return &LoggingExamExtractor{next: next, logger: logger}
}

// ExtractExams delegates to the wrapped extractor and logs the operation.
func (e *LoggingExamExtractor) ExtractExams(doc *gradeforge.Document) (exams []*gradeforge.ExamSlot, err error) {
	defer func(begin time.Time) {
		logExtraction(e.logger, nil, "exam extraction", doc, len(exams), begin, err)
	}(time.Now())
	return e.next.ExtractExams(doc)
}

// LoggingBookstoreExtractor wraps a BookstoreExtractor with logging.
type LoggingBookstoreExtractor struct {
	next   gradeforge.BookstoreExtractor
	logger *slog.Logger
}

// NewLoggingBookstoreExtractor creates a new LoggingBookstoreExtractor.
func NewLoggingBookstoreExtractor(next gradeforge.BookstoreExtractor, logger *slog.Logger) *LoggingBookstoreExtractor {
	return &LoggingBookstoreExtractor{next: next, logger: logger}
}

// ExtractBooks delegates to the wrapped extractor and logs the operation.
func (e *LoggingBookstoreExtractor) ExtractBooks(doc *gradeforge.Document) (books []*gradeforge.Book, err error) {
	defer func(begin time.Time) {
		logExtraction(e.logger, nil, "bookstore extraction", doc, len(books), begin, err)
	}(time.Now())
	return e.next.ExtractBooks(doc)
}

// LoggingGradeExtractor wraps a GradeExtractor with logging.
type LoggingGradeExtractor struct {
	next   gradeforge.GradeExtractor
	logger *slog.Logger
}

// NewLoggingGradeExtractor creates a new LoggingGradeExtractor.
func NewLoggingGradeExtractor(next gradeforge.GradeExtractor, logger *slog.Logger) *LoggingGradeExtractor {
	return &LoggingGradeExtractor{next: next, logger: logger}
}

// ExtractGrades delegates to the wrapped extractor and logs the operation.
func (e *LoggingGradeExtractor) ExtractGrades(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) (grades []*gradeforge.Grade, err error) {
	defer func(begin time.Time) {
		logExtraction(e.logger, ectx, "grade extraction", doc, len(grades), begin, err)
	}(time.Now())
	return e.next.ExtractGrades(ectx, doc)
}

// logExtraction writes one record per extracted document. Failures are
// logged at error level with the partial fields of a record error.
func logExtraction(logger *slog.Logger, ectx *gradeforge.ExtractionContext, msg string, doc *gradeforge.Document, n int, begin time.Time, err error) {
	args := []any{
		"document", doc.Name,
		"records", n,
		"duration", time.Since(begin),
	}
	if ectx != nil {
		args = append(args, "batch", ectx.ID)
	}
	if err == nil {
		logger.Info(msg, args...)
		return
	}

	var re *gradeforge.RecordError
	if errors.As(err, &re) {
		args = append(args, "record", re.Record, "fields", re.Fields.String())
	}
	args = append(args, "code", gradeforge.ErrorCode(err), "err", err)
	logger.Error(msg, args...)
}
