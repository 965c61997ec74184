package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/orderclock/internal/order"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Orders     []jsonOrder `json:"orders"`
}

type jsonOrder struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	SetupSec   int64  `json:"setup_seconds"`
	PauseSec   int64  `json:"pause_seconds"`
	WorkSec    int64  `json:"work_seconds"`
	Setup      string `json:"setup"`
	Pause      string `json:"pause"`
	Work       string `json:"work"`
	GoodCount  int    `json:"good_count"`
	BadCount   int    `json:"bad_count"`
	Finished   bool   `json:"finished"`
	Notes      string `json:"notes,omitempty"`
}

// ToJSON writes the orders with their derived breakdowns evaluated at now.
func ToJSON(orders []order.Order, now time.Time, path string) error {
	export := jsonExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(orders),
	}

	for _, o := range orders {
		startStr, endStr := "", ""
		if o.StartTime != nil {
			startStr = o.StartTime.Local().Format(time.RFC3339)
		}
		if o.EndTime != nil {
			endStr = o.EndTime.Local().Format(time.RFC3339)
		}
		setup, pause, work := o.SetupTime(now), o.PauseTime(now), o.NetWorkTime(now)

		export.Orders = append(export.Orders, jsonOrder{
			ID:        o.ID.String(),
			Number:    o.Number,
			Date:      o.Date.Local().Format("2006-01-02"),
			StartTime: startStr,
			EndTime:   endStr,
			SetupSec:  setup,
			PauseSec:  pause,
			WorkSec:   work,
			Setup:     formatDuration(setup),
			Pause:     formatDuration(pause),
			Work:      formatDuration(work),
			GoodCount: o.GoodCount,
			BadCount:  o.BadCount,
			Finished:  o.Finished,
			Notes:     o.Notes,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
