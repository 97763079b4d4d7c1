package mock

import "github.com/fwojciec/gradeforge"

var (
	_ gradeforge.CatalogExtractor   = (*CatalogExtractor)(nil)
	_ gradeforge.SectionExtractor   = (*SectionExtractor)(nil)
	_ gradeforge.ExamExtractor      = (*ExamExtractor)(nil)
	_ gradeforge.BookstoreExtractor = (*BookstoreExtractor)(nil)
	_ gradeforge.GradeExtractor     = (*GradeExtractor)(nil)
)

// CatalogExtractor is a mock implementation of gradeforge.CatalogExtractor.
type CatalogExtractor struct {
	ExtractCatalogFn func(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Course, error)
}

func (e *CatalogExtractor) ExtractCatalog(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Course, error) {
	return e.ExtractCatalogFn(ectx, doc)
}

// SectionExtractor is a mock implementation of gradeforge.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionsFn func(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Section, error)
}

func (e *SectionExtractor) ExtractSections(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Section, error) {
	return e.ExtractSectionsFn(ectx, doc)
}

// ExamExtractor is a mock implementation of gradeforge.ExamExtractor.
type ExamExtractor struct {
	ExtractExamsFn func(doc *gradeforge.Document) ([]*gradeforge.ExamSlot, error)
}

func (e *ExamExtractor) ExtractExams(doc *gradeforge.Document) ([]*gradeforge.ExamSlot, error) {
	return e.ExtractExamsFn(doc)
}

// BookstoreExtractor is a mock implementation of gradeforge.BookstoreExtractor.
type BookstoreExtractor struct {
	ExtractBooksFn func(doc *gradeforge.Document) ([]*gradeforge.Book, error)
}

func (e *BookstoreExtractor) ExtractBooks(doc *gradeforge.Document) ([]*gradeforge.Book, error) {
	return e.ExtractBooksFn(doc)
}

// GradeExtractor is a mock implementation of gradeforge.GradeExtractor.
type GradeExtractor struct {
	ExtractGradesFn func(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Grade, error)
}

func (e *GradeExtractor) ExtractGrades(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Grade, error) {
	return e.ExtractGradesFn(ectx, doc)
}
