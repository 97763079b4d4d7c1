package gradeforge

// CatalogExtractor decodes catalog listing documents.
type CatalogExtractor interface {
	// ExtractCatalog returns one course per header/body row pair.
	// Department descriptions are recorded in ectx.
	// Returns ESTRUCTURE if the rows do not alternate header/body.
	ExtractCatalog(ectx *ExtractionContext, doc *Document) ([]*Course, error)
}

// SectionExtractor decodes course-section listing documents.
type SectionExtractor interface {
	// ExtractSections returns one section per header/body row pair.
	// Terms and instructors are deduplicated through ectx.
	// Returns ESTRUCTURE if the rows do not alternate header/body.
	ExtractSections(ectx *ExtractionContext, doc *Document) ([]*Section, error)
}

// ExamExtractor decodes final-exam schedule documents.
type ExamExtractor interface {
	ExtractExams(doc *Document) ([]*ExamSlot, error)
}

// BookstoreExtractor decodes bookstore course-material listings.
type BookstoreExtractor interface {
	ExtractBooks(doc *Document) ([]*Book, error)
}

// GradeExtractor decodes grade-distribution reports.
type GradeExtractor interface {
	ExtractGrades(ectx *ExtractionContext, doc *Document) ([]*Grade, error)
}
