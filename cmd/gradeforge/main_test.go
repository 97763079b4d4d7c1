package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/gradeforge/cmd/gradeforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogPage = `<html><body><table class="datadisplaytable" width="100%">
<tr><td class="nttitle"><a href="#">MATH 141 - Calculus I</a></td></tr>
<tr><td class="ntdefault">Functions, limits, derivatives.
<br>
    4.000 Credit hours
<br>
<span class="fieldlabeltext">Levels: </span>Undergraduate
<br>
<span class="fieldlabeltext">Schedule Types: </span>Lecture
<br>
Mathematics Department
</td></tr>
</table></body></html>`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	m := main.NewMain()
	m.Now = func() time.Time { return time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC) }
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_ExtractLoadQuery(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := filepath.Join(dir, "catalog-201808-MATH.html")
	require.NoError(t, os.WriteFile(page, []byte(catalogPage), 0644))
	out := filepath.Join(dir, "201808")
	db := filepath.Join(dir, "portal.db")

	stdout, stderr, err := run(t, "extract", page, "--out", out)
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Extracted 2 records from 1 documents")

	stdout, stderr, err = run(t, "--db", db, "load", out)
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Loaded 2 records into "+db)

	stdout, stderr, err = run(t, "--db", db, "query", "SELECT department, code, title, credits FROM class")
	require.NoError(t, err, stderr)
	assert.Equal(t, "MATH|141|Calculus I|4\n", stdout)

	stdout, stderr, err = run(t, "--db", db, "query", "SELECT * FROM department", "--separator", ",")
	require.NoError(t, err, stderr)
	assert.Equal(t, "MATH,Mathematics\n", stdout)

	stdout, _, err = run(t, "--db", db, "schema")
	require.NoError(t, err)
	assert.Contains(t, stdout, `CREATE TABLE "class"`)
}

func TestMain_Run_Semester(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "semester")
	require.NoError(t, err)
	assert.Equal(t, "201808\n", stdout)

	stdout, _, err = run(t, "semester", "spring", "2015")
	require.NoError(t, err)
	assert.Equal(t, "201501\n", stdout)
}

func TestMain_Run_Config(t *testing.T) {
	t.Parallel()

	t.Run("applies the configured semester policy", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gradeforge.json5")
		require.NoError(t, os.WriteFile(path, []byte(`{semester: {preEraSummerSuffix: "31"}}`), 0644))

		stdout, stderr, err := run(t, "--config", path, "semester", "summer", "2013")

		require.NoError(t, err, stderr)
		assert.Equal(t, "201331\n", stdout)
	})

	t.Run("fails on a missing config file", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "--config", filepath.Join(t.TempDir(), "none.json5"), "semester")

		require.Error(t, err)
		assert.Contains(t, stderr, "not found")
	})
}

func TestMain_Run_ExtractRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "extract", "page.html", "--out", t.TempDir(), "--kind", "syllabus")

	require.Error(t, err)
	assert.Contains(t, stderr, `unknown document kind "syllabus"`)
}
