package goquery_test

import (
	"testing"

	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogHeaderCSCE145 = `<tr><td class="nttitle"><a href="/BANP/bwckctlg.p_disp_course_detail?cat_term_in=201808&amp;subj_code_in=CSCE&amp;crse_numb_in=145">CSCE 145 - Algorithmic Design I</a></td></tr>`

const catalogBodyCSCE145 = `<tr><td class="ntdefault">Problem solving, algorithms, and program design.
<br>
    4.000 Credit hours
<br>
<span class="fieldlabeltext">Levels: </span>Undergraduate
<br>
<span class="fieldlabeltext">Schedule Types: </span>Lecture, Lab
<br>
Computer Science &amp; Engineering Department
<br>
<span class="fieldlabeltext">Course Attributes: </span>Carolina Core ARP
<br>
<a href="/BANP/bwckctlg.p_disp_listcrse?term_in=201808&amp;subj_in=CSCE&amp;crse_in=145">All Sections for this Course</a>
</td></tr>`

const catalogCSCE146 = `<tr><td class="nttitle"><a href="#">CSCE 146 - Algorithmic Design II - Data Structures</a></td></tr>
<tr><td class="ntdefault">Continuation of CSCE 145.
<br>
    3.000    OR  4.000 Credit hours
<br>
<span class="fieldlabeltext">Levels: </span>Undergraduate
<br>
<span class="fieldlabeltext">Schedule Types: </span>Lecture
<br>
USC-A Computer Science &amp; Engineering Department
</td></tr>`

const catalogMATH141 = `<tr><td class="nttitle"><a href="#">MATH 141 - Calculus I</a></td></tr>
<tr><td class="ntdefault">Functions, limits, derivatives.
<br>
    4.000 Credit hours
<br>
<span class="fieldlabeltext">Levels: </span>Undergraduate
<br>
<span class="fieldlabeltext">Schedule Types: </span>Lecture
<br>
Arts and Sciences Division
<br>
Mathematics Department
</td></tr>`

func catalogDocument(rows ...string) *gradeforge.Document {
	html := `<html><body><table class="datadisplaytable" width="100%">`
	for _, r := range rows {
		html += r + "\n"
	}
	html += `</table></body></html>`
	return &gradeforge.Document{Name: "catalog-201808.html", Kind: gradeforge.KindCatalog, Content: []byte(html)}
}

func TestCatalogExtractor_ExtractCatalog(t *testing.T) {
	t.Parallel()

	t.Run("extracts courses and departments from paired rows", func(t *testing.T) {
		t.Parallel()

		ectx := gradeforge.NewExtractionContext(nil, gradeforge.DefaultPolicy())
		doc := catalogDocument(catalogHeaderCSCE145, catalogBodyCSCE145, catalogCSCE146, catalogMATH141)

		courses, err := goquery.NewCatalogExtractor().ExtractCatalog(ectx, doc)
		require.NoError(t, err)

		want := []*gradeforge.Course{
			{
				Department:  "CSCE",
				Code:        "145",
				Title:       "Algorithmic Design I",
				Description: "Problem solving, algorithms, and program design.",
				Credits:     "4",
				Attributes:  "Carolina Core ARP",
				Level:       "Undergraduate",
				Type:        "Lecture, Lab",
				AllSections: "https://ssb.onecarolina.sc.edu/BANP/bwckctlg.p_disp_listcrse?term_in=201808&subj_in=CSCE&crse_in=145",
			},
			{
				Department:  "CSCE",
				Code:        "146",
				Title:       "Algorithmic Design II - Data Structures",
				Description: "Continuation of CSCE 145.",
				Credits:     "3 TO 4",
				Level:       "Undergraduate",
				Type:        "Lecture",
			},
			{
				Department:  "MATH",
				Code:        "141",
				Title:       "Calculus I",
				Description: "Functions, limits, derivatives.",
				Credits:     "4",
				Level:       "Undergraduate",
				Type:        "Lecture",
				Division:    "Arts and Sciences",
			},
		}
		if diff := cmp.Diff(want, courses); diff != "" {
			t.Errorf("courses mismatch (-want +got):\n%s", diff)
		}

		departments := ectx.Departments()
		require.Len(t, departments, 2)
		assert.Equal(t, &gradeforge.Department{Code: "CSCE", Description: "Computer Science & Engineering"}, departments[0])
		assert.Equal(t, &gradeforge.Department{Code: "MATH", Description: "Mathematics"}, departments[1])
		assert.Zero(t, ectx.Warnings())
	})

	t.Run("returns no courses for a document without listings", func(t *testing.T) {
		t.Parallel()

		ectx := gradeforge.NewExtractionContext(nil, gradeforge.DefaultPolicy())

		courses, err := goquery.NewCatalogExtractor().ExtractCatalog(ectx, catalogDocument())

		require.NoError(t, err)
		assert.Empty(t, courses)
	})

	t.Run("rejects an odd number of rows", func(t *testing.T) {
		t.Parallel()

		ectx := gradeforge.NewExtractionContext(nil, gradeforge.DefaultPolicy())
		doc := catalogDocument(catalogHeaderCSCE145, catalogBodyCSCE145, catalogHeaderCSCE145)

		courses, err := goquery.NewCatalogExtractor().ExtractCatalog(ectx, doc)

		assert.Nil(t, courses)
		assert.Equal(t, gradeforge.ESTRUCTURE, gradeforge.ErrorCode(err))
	})

	t.Run("rejects a body row where a header is expected", func(t *testing.T) {
		t.Parallel()

		ectx := gradeforge.NewExtractionContext(nil, gradeforge.DefaultPolicy())
		doc := catalogDocument(catalogBodyCSCE145, catalogHeaderCSCE145)

		_, err := goquery.NewCatalogExtractor().ExtractCatalog(ectx, doc)

		assert.Equal(t, gradeforge.ESTRUCTURE, gradeforge.ErrorCode(err))
		assert.Contains(t, gradeforge.ErrorMessage(err), "expected header row")
	})

	t.Run("attaches partial fields to record errors", func(t *testing.T) {
		t.Parallel()

		ectx := gradeforge.NewExtractionContext(nil, gradeforge.DefaultPolicy())
		doc := catalogDocument(`<tr><td class="nttitle"><a href="#">CSCE 145 - Algorithmic Design I</a></td></tr>`,
			`<tr><td class="ntdefault">No labelled fields here.</td></tr>`)

		_, err := goquery.NewCatalogExtractor().ExtractCatalog(ectx, doc)

		var recErr *gradeforge.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, "catalog-201808.html", recErr.Document)
		assert.Equal(t, 0, recErr.Record)
		assert.Equal(t, "CSCE", recErr.Fields["department"])
		assert.Equal(t, "No labelled fields here.", recErr.Fields["description"])
		assert.Equal(t, gradeforge.ESTRUCTURE, gradeforge.ErrorCode(err))
	})
}
