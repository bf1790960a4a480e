package dateutils_test

import (
	"testing"
	"time"

	"github.com/zxfpro/expenditure-analyse/internal/dateutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2023-10-01", "2023-10-01"},
		{"2023/10/01", "2023-10-01"},
		{"10/01/2023", "2023-10-01"},
		{" 2023-10-01 ", "2023-10-01"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := dateutils.ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(dateutils.DateLayoutISO))
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := dateutils.ParseDate("无效日期")
	assert.Error(t, err)

	_, err = dateutils.ParseDate("")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	got, err := dateutils.ParseDateTime("2023-10-01", "12:30:45")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 45, got.Second())

	// Short time form.
	got, err = dateutils.ParseDateTime("2023-10-01", "08:15")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Hour())
	assert.Equal(t, 15, got.Minute())
}

func TestParseTime(t *testing.T) {
	got, err := dateutils.ParseTime("18:45:30")
	require.NoError(t, err)
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 45, got.Minute())

	got, err = dateutils.ParseTime("07:05")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())

	_, err = dateutils.ParseTime("不是时间")
	assert.Error(t, err)
	_, err = dateutils.ParseTime("")
	assert.Error(t, err)
}

func TestCombineDateTime(t *testing.T) {
	day := time.Date(2023, 10, 1, 0, 0, 0, 0, time.Local)
	tod, err := dateutils.ParseTime("12:30:45")
	require.NoError(t, err)

	combined := dateutils.CombineDateTime(day, tod)
	assert.Equal(t, "2023-10-01", combined.Format(dateutils.DateLayoutISO))
	assert.Equal(t, 12, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
	assert.Equal(t, 45, combined.Second())
	assert.Equal(t, time.Local, combined.Location())
}

func TestParseDateTime_EmptyOrBadTime(t *testing.T) {
	// Missing or unparseable time leaves the timestamp at midnight.
	got, err := dateutils.ParseDateTime("2023-10-01", "")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())

	got, err = dateutils.ParseDateTime("2023-10-01", "中午")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())
}

func TestWeekRange(t *testing.T) {
	// Wednesday 2023-10-11.
	wednesday := time.Date(2023, 10, 11, 14, 0, 0, 0, time.Local)

	start, end := dateutils.WeekRange(wednesday)
	assert.Equal(t, "2023-10-09", start.Format(dateutils.DateLayoutISO))
	assert.Equal(t, "2023-10-15", end.Format(dateutils.DateLayoutISO))
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())
}

func TestWeekRange_SundayBelongsToSameWeek(t *testing.T) {
	sunday := time.Date(2023, 10, 15, 9, 0, 0, 0, time.Local)

	start, _ := dateutils.WeekRange(sunday)
	assert.Equal(t, "2023-10-09", start.Format(dateutils.DateLayoutISO))
}

func TestPreviousWeekRange(t *testing.T) {
	monday := time.Date(2023, 10, 9, 8, 0, 0, 0, time.Local)

	start, end := dateutils.PreviousWeekRange(monday)
	assert.Equal(t, "2023-10-02", start.Format(dateutils.DateLayoutISO))
	assert.Equal(t, "2023-10-08", end.Format(dateutils.DateLayoutISO))
}

func TestMonthRange(t *testing.T) {
	mid := time.Date(2023, 2, 14, 12, 0, 0, 0, time.Local)

	start, end := dateutils.MonthRange(mid)
	assert.Equal(t, "2023-02-01", start.Format(dateutils.DateLayoutISO))
	assert.Equal(t, "2023-02-28", end.Format(dateutils.DateLayoutISO))
}

func TestPreviousMonthRange_AcrossYear(t *testing.T) {
	january := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	start, end := dateutils.PreviousMonthRange(january)
	assert.Equal(t, "2023-12-01", start.Format(dateutils.DateLayoutISO))
	assert.Equal(t, "2023-12-31", end.Format(dateutils.DateLayoutISO))
}

func TestEndOfDay(t *testing.T) {
	day := time.Date(2023, 10, 1, 7, 30, 0, 0, time.Local)

	end := dateutils.EndOfDay(day)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	// Still the same calendar day.
	assert.True(t, dateutils.SameDay(day, end))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2023, 10, 1, 0, 0, 1, 0, time.Local)
	b := time.Date(2023, 10, 1, 23, 59, 59, 0, time.Local)
	c := time.Date(2023, 10, 2, 0, 0, 0, 0, time.Local)

	assert.True(t, dateutils.SameDay(a, b))
	assert.False(t, dateutils.SameDay(b, c))
}
