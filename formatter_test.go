package gradeforge_test

import (
	"testing"

	"github.com/fwojciec/gradeforge"
	"github.com/stretchr/testify/assert"
)

func TestFormatRows(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no rows", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, gradeforge.FormatRows(nil, "|"))
	})

	t.Run("joins fields and rows without a trailing newline", func(t *testing.T) {
		t.Parallel()

		rows := [][]string{
			{"CSCE", "Computer Science"},
			{"MATH", ""},
		}

		assert.Equal(t, "CSCE|Computer Science\nMATH|", gradeforge.FormatRows(rows, "|"))
	})

	t.Run("honors a custom separator", func(t *testing.T) {
		t.Parallel()

		rows := [][]string{{"a", "b", "c"}}

		assert.Equal(t, "a\tb\tc", gradeforge.FormatRows(rows, "\t"))
	})
}
