package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayFormat(t *testing.T) {
	today := Today()
	parsed, err := ParseDate(today)
	require.NoError(t, err)
	assert.Equal(t, today, parsed.Format(DateLayout))
}

func TestDatePassed(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format(DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(DateLayout)

	assert.True(t, DatePassed(yesterday))
	assert.False(t, DatePassed(Today()), "today is not passed")
	assert.False(t, DatePassed(tomorrow))
	assert.True(t, DatePassed("not-a-date"))
	assert.True(t, DatePassed(""))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, ParseDuration("24h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("garbage", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
