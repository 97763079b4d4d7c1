package gradeforge

import (
	"context"
	"path/filepath"
	"strings"
)

// DocumentKind identifies which extractor understands a document.
type DocumentKind string

// Recognized document shapes.
const (
	KindUnknown   DocumentKind = ""
	KindCatalog   DocumentKind = "catalog"
	KindSections  DocumentKind = "sections"
	KindExam      DocumentKind = "exam"
	KindBookstore DocumentKind = "bookstore"
	KindGrades    DocumentKind = "grades"
)

// DocumentKinds lists every recognized kind in dispatch order.
var DocumentKinds = []DocumentKind{KindCatalog, KindSections, KindExam, KindBookstore, KindGrades}

// Document is an already-downloaded portal page or report.
type Document struct {
	Name    string       `json:"name"`
	Kind    DocumentKind `json:"kind"`
	Content []byte       `json:"-"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Kind == KindUnknown {
		return Errorf(EINVALID, "document %q: kind required", d.Name)
	}
	return nil
}

// ParseDocumentKind returns the kind named by s.
func ParseDocumentKind(s string) (DocumentKind, error) {
	for _, k := range DocumentKinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return KindUnknown, Errorf(EINVALID, "unknown document kind %q", s)
}

// InferDocumentKind guesses the kind from a file name such as
// "sections-201808-CSCE.html". Returns KindUnknown if no kind name appears.
func InferDocumentKind(name string) DocumentKind {
	base := strings.ToLower(filepath.Base(name))
	for _, k := range DocumentKinds {
		if strings.Contains(base, string(k)) {
			return k
		}
	}
	return KindUnknown
}

// DocumentSource supplies already-downloaded documents. Network retrieval
// is the responsibility of an external fetcher.
type DocumentSource interface {
	// FetchDocument returns the named document.
	// Returns ENOTFOUND if the document does not exist.
	FetchDocument(ctx context.Context, name string) (*Document, error)
}
