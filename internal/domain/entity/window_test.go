package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeWindow(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "midday UTC",
			now:       time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
			wantStart: "2024-03-08",
			wantEnd:   "2024-03-15",
		},
		{
			name:      "local evening already next day in UTC",
			now:       time.Date(2024, 1, 7, 22, 30, 0, 0, brt),
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-08",
		},
		{
			name:      "crosses year boundary",
			now:       time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			wantStart: "2023-12-27",
			wantEnd:   "2024-01-03",
		},
		{
			name:      "leap day",
			now:       time.Date(2024, 3, 6, 23, 59, 59, 0, time.UTC),
			wantStart: "2024-02-28",
			wantEnd:   "2024-03-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewTimeWindow(tt.now)
			assert.Equal(t, tt.wantStart, w.StartDate())
			assert.Equal(t, tt.wantEnd, w.EndDate())
			assert.Equal(t, WindowDays*24*time.Hour, w.End.Sub(w.Start))
			assert.Equal(t, tt.wantStart+" to "+tt.wantEnd, w.String())
		})
	}
}

func TestReportKey(t *testing.T) {
	date := time.Date(2024, 1, 8, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "reports/weekly-report-2024-01-08.json", ReportKey("reports", date))
	assert.Equal(t, "weekly-report-2024-01-08.json", ReportKey("", date))
	assert.Equal(t, "a/b/weekly-report-2024-01-08.json", ReportKey("a/b/", date))

	// mesmo dia, mesma chave
	later := date.Add(20 * time.Hour)
	assert.Equal(t, ReportKey("reports", date), ReportKey("reports", later))
}
