package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1985/09/04")
	require.NoError(t, err)
	assert.Equal(t, 1985, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 4, d.Day())
}

func TestParseDate_TrimsSpaces(t *testing.T) {
	d, err := ParseDate("1963/ 10 /2")
	require.NoError(t, err)
	assert.Equal(t, time.October, d.Month())
}

func TestParseDate_Errors(t *testing.T) {
	for _, s := range []string{"", "1985/09", "1985/09/04/12", "1985/xx/04", "2021/02/30", "2021/13/01"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrBadEntryValue, "input %q", s)
	}
}

func TestParseAcquisition(t *testing.T) {
	ts, err := ParseAcquisition("2021/12/12/16/31")
	require.NoError(t, err)
	assert.Equal(t, 16, ts.Hour())
	assert.Equal(t, 31, ts.Minute())
}

func TestParseAcquisition_Errors(t *testing.T) {
	for _, s := range []string{"2021/12/12", "2021/12/12/25/00", "2021/12/12/12/60", "2021/12/12/aa/00"} {
		_, err := ParseAcquisition(s)
		assert.ErrorIs(t, err, ErrBadEntryValue, "input %q", s)
	}
}
