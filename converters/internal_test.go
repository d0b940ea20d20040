package converters

import (
	"testing"
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	"github.com/Station-Manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	op := errors.Op("test.ParseDate")

	tests := []struct {
		name    string
		input   string
		want    temporal.LocalDate
		wantErr bool
	}{
		{name: "YYYYMMDD format", input: "20251108", want: temporal.LocalDate{Year: 2025, Month: time.November, Day: 8}},
		{name: "YYYY-MM-DD format", input: "2025-11-08", want: temporal.LocalDate{Year: 2025, Month: time.November, Day: 8}},
		{name: "leap year date", input: "2024-02-29", want: temporal.LocalDate{Year: 2024, Month: time.February, Day: 29}},
		{name: "invalid separators", input: "2025/11/08", wantErr: true},
		{name: "too short", input: "2025-11", wantErr: true},
		{name: "too long", input: "2025-11-089", wantErr: true},
		{name: "invalid month", input: "20251308", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(op, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	op := errors.Op("test.ParseTime")

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "HHMM format", input: "1430", want: 14*time.Hour + 30*time.Minute},
		{name: "HH:MM format", input: "14:30", want: 14*time.Hour + 30*time.Minute},
		{name: "HHMMSS format", input: "143015", want: 14*time.Hour + 30*time.Minute + 15*time.Second},
		{name: "midnight", input: "0000", want: 0},
		{name: "end of day", input: "2359", want: 23*time.Hour + 59*time.Minute},
		{name: "invalid hour", input: "2500", wantErr: true},
		{name: "invalid minute", input: "1260", wantErr: true},
		{name: "wrong length", input: "143", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(op, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckLocal(t *testing.T) {
	op := errors.Op("test.CheckLocal")
	assert.NoError(t, CheckLocalDate(op, temporal.LocalDate{Year: 2025, Month: time.November, Day: 8}))
	assert.Error(t, CheckLocalDate(op, temporal.LocalDate{Year: 2025, Month: time.November, Day: 31}))
	assert.Error(t, CheckLocalDate(op, temporal.LocalDate{}))
	assert.NoError(t, CheckLocalDateTime(op, temporal.LocalDateTime{Year: 2025, Month: time.November, Day: 8, Hour: 23}))
	assert.Error(t, CheckLocalDateTime(op, temporal.LocalDateTime{Year: 2025, Month: time.November, Day: 8, Minute: 60}))
}
