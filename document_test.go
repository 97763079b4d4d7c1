package gradeforge_test

import (
	"testing"

	"github.com/fwojciec/gradeforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		err := (&gradeforge.Document{Kind: gradeforge.KindCatalog}).Validate()

		assert.Equal(t, gradeforge.EINVALID, gradeforge.ErrorCode(err))
		assert.Equal(t, "document name required", gradeforge.ErrorMessage(err))
	})

	t.Run("requires a kind", func(t *testing.T) {
		t.Parallel()

		err := (&gradeforge.Document{Name: "page.html"}).Validate()

		assert.Equal(t, gradeforge.EINVALID, gradeforge.ErrorCode(err))
	})

	t.Run("accepts a named document of known kind", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, (&gradeforge.Document{Name: "exam.html", Kind: gradeforge.KindExam}).Validate())
	})
}

func TestParseDocumentKind(t *testing.T) {
	t.Parallel()

	kind, err := gradeforge.ParseDocumentKind("Bookstore")
	require.NoError(t, err)
	assert.Equal(t, gradeforge.KindBookstore, kind)

	_, err = gradeforge.ParseDocumentKind("syllabus")
	assert.Equal(t, gradeforge.EINVALID, gradeforge.ErrorCode(err))
}

func TestInferDocumentKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want gradeforge.DocumentKind
	}{
		{"downloads/catalog-201808-CSCE.html", gradeforge.KindCatalog},
		{"sections-201808-CSCE.html", gradeforge.KindSections},
		{"Exam-Fall-2018.html", gradeforge.KindExam},
		{"bookstore-CSCE-145-001.html", gradeforge.KindBookstore},
		{"grades-fall-2018.txt", gradeforge.KindGrades},
		{"index.html", gradeforge.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gradeforge.InferDocumentKind(tt.name))
		})
	}
}
