// Package export writes order reports with their derived time breakdowns.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/orderclock/internal/order"
)

// ToCSV writes one row per order. Derived times are evaluated against now so
// unfinished orders export their live values.
func ToCSV(orders []order.Order, now time.Time, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	header := []string{"Number", "Date", "Start", "End", "Setup", "Pause", "Work", "Good", "Bad", "Finished", "Notes"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, o := range orders {
		startStr, endStr := "", ""
		if o.StartTime != nil {
			startStr = o.StartTime.Local().Format(time.RFC3339)
		}
		if o.EndTime != nil {
			endStr = o.EndTime.Local().Format(time.RFC3339)
		}

		row := []string{
			o.Number,
			o.Date.Local().Format("2006-01-02"),
			startStr,
			endStr,
			formatDuration(o.SetupTime(now)),
			formatDuration(o.PauseTime(now)),
			formatDuration(o.NetWorkTime(now)),
			fmt.Sprintf("%d", o.GoodCount),
			fmt.Sprintf("%d", o.BadCount),
			fmt.Sprintf("%t", o.Finished),
			o.Notes,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
