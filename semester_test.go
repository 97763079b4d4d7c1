package gradeforge_test

import (
	"testing"
	"time"

	"github.com/fwojciec/gradeforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSemester(t *testing.T) {
	t.Parallel()

	t.Run("uses 08/01/05 from 2014 onward", func(t *testing.T) {
		t.Parallel()

		for season, want := range map[string]string{"fall": "201808", "Summer": "201805", "sPrINg": "201501"} {
			year := 2018
			if season == "sPrINg" {
				year = 2015
			}
			got, err := gradeforge.EncodeSemester(season, year)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("uses 41/11 before 2014", func(t *testing.T) {
		t.Parallel()

		got, err := gradeforge.EncodeSemester("fall", 2013)
		require.NoError(t, err)
		assert.Equal(t, "201341", got)

		got, err = gradeforge.EncodeSemester("spring", 2013)
		require.NoError(t, err)
		assert.Equal(t, "201311", got)
	})

	t.Run("rejects summer before 2014", func(t *testing.T) {
		t.Parallel()

		_, err := gradeforge.EncodeSemester("summer", 2013)
		assert.Equal(t, gradeforge.EINVALID, gradeforge.ErrorCode(err))
	})

	t.Run("encodes pre-era summer when the policy defines it", func(t *testing.T) {
		t.Parallel()

		policy := gradeforge.DefaultSemesterPolicy
		policy.PreEraSummerSuffix = "31"

		got, err := policy.Encode("summer", 2013)
		require.NoError(t, err)
		assert.Equal(t, "201331", got)
	})

	t.Run("rejects unknown seasons and bad years", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			season string
			year   int
		}{{"winter", 2018}, {"spring", 1}, {"Fall", -107}, {"summer", 10000}} {
			_, err := gradeforge.EncodeSemester(tc.season, tc.year)
			assert.Equal(t, gradeforge.EINVALID, gradeforge.ErrorCode(err), tc)
		}
	})

	t.Run("passes through valid codes", func(t *testing.T) {
		t.Parallel()

		got, err := gradeforge.EncodeSemester("201808", 0)
		require.NoError(t, err)
		assert.Equal(t, "201808", got)
	})

	t.Run("reports well-formed but invalid codes", func(t *testing.T) {
		t.Parallel()

		_, err := gradeforge.EncodeSemester("201899", 0)
		require.Error(t, err)
		assert.Contains(t, gradeforge.ErrorMessage(err), "right format but invalid")

		_, err = gradeforge.EncodeSemester("200108", 0)
		assert.Contains(t, gradeforge.ErrorMessage(err), "right format but invalid")
	})
}

func TestSemesterPolicy_Parse(t *testing.T) {
	t.Parallel()

	got, err := gradeforge.DefaultSemesterPolicy.Parse("Fall  2018")
	require.NoError(t, err)
	assert.Equal(t, "201808", got)

	_, err = gradeforge.DefaultSemesterPolicy.Parse("Fall")
	assert.Error(t, err)
}

func TestSemesterSeason(t *testing.T) {
	t.Parallel()

	for code, want := range map[string]gradeforge.Season{
		"201808": gradeforge.Fall,
		"201405": gradeforge.Summer,
		"201901": gradeforge.Spring,
	} {
		got, err := gradeforge.SemesterSeason(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, code := range []string{"-2", "20", "2018808", "garbage", "201341", "201311"} {
		_, err := gradeforge.SemesterSeason(code)
		assert.Equal(t, gradeforge.EINVALID, gradeforge.ErrorCode(err), code)
	}
}

func TestSemesterRoundTrip(t *testing.T) {
	t.Parallel()

	for _, season := range []gradeforge.Season{gradeforge.Fall, gradeforge.Spring, gradeforge.Summer} {
		for year := 2014; year <= 2030; year++ {
			code, err := gradeforge.EncodeSemester(string(season), year)
			require.NoError(t, err)
			got, err := gradeforge.SemesterSeason(code)
			require.NoError(t, err)
			assert.Equal(t, season, got)
		}
	}
}

func TestBookstoreTerm(t *testing.T) {
	t.Parallel()

	for code, want := range map[string]string{"201808": "F18", "201801": "W18", "201805": "A18", "201505": "A15"} {
		got, err := gradeforge.BookstoreTerm(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, code := range []string{"201504", "some garbage", "-21505"} {
		_, err := gradeforge.BookstoreTerm(code)
		assert.Error(t, err, code)
	}
}

func TestSeasonOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gradeforge.Spring, gradeforge.SeasonOf(time.January))
	assert.Equal(t, gradeforge.Spring, gradeforge.SeasonOf(time.April))
	assert.Equal(t, gradeforge.Summer, gradeforge.SeasonOf(time.May))
	assert.Equal(t, gradeforge.Summer, gradeforge.SeasonOf(time.July))
	assert.Equal(t, gradeforge.Fall, gradeforge.SeasonOf(time.August))
	assert.Equal(t, gradeforge.Fall, gradeforge.SeasonOf(time.December))
}
