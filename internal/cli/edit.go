package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/orderclock/internal/order"
)

var editFlags struct {
	good, bad             int
	notes                 string
	setupMin, pauseMin    int64
	workHours, setupHrs   float64
	clearWork, clearSetup bool
	start, end, date      string
}

func init() {
	f := editCmd.Flags()
	f.IntVar(&editFlags.good, "good", 0, "good piece count")
	f.IntVar(&editFlags.bad, "bad", 0, "bad piece count")
	f.StringVar(&editFlags.notes, "notes", "", "free-text notes")
	f.Int64Var(&editFlags.setupMin, "setup-min", 0, "booked setup time in minutes")
	f.Int64Var(&editFlags.pauseMin, "pause-min", 0, "booked pause time in minutes")
	f.Float64Var(&editFlags.workHours, "work-hours", 0, "manual work hours override")
	f.Float64Var(&editFlags.setupHrs, "setup-hours", 0, "manual setup hours override")
	f.BoolVar(&editFlags.clearWork, "clear-work-hours", false, "drop the manual work override")
	f.BoolVar(&editFlags.clearSetup, "clear-setup-hours", false, "drop the manual setup override")
	f.StringVar(&editFlags.start, "start", "", "start time of day (HH:MM)")
	f.StringVar(&editFlags.end, "end", "", "end time of day (HH:MM)")
	f.StringVar(&editFlags.date, "date", "", "calendar day (YYYY-MM-DD), shifts start/end along")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <id|number>",
	Short: "Correct fields on an order",
	Long:  "Correct counts, notes, booked times, manual overrides or timestamps.\nFinished orders must be made editable first (see 'orderclock editable').",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		o, err := a.resolve(args[0])
		if err != nil {
			return err
		}
		if o.Finished && !o.Editable {
			return fmt.Errorf("%s is finished; run 'orderclock editable %s on' first", o.Number, o.Number)
		}

		edits, err := collectEdits(cmd)
		if err != nil {
			return err
		}
		if len(edits) == 0 {
			return fmt.Errorf("no edit flags given")
		}

		got, _ := a.col.Update(o.ID, func(o order.Order) order.Order {
			for _, e := range edits {
				o = e(o)
			}
			return o
		})
		fmt.Printf("updated %s\n", got.Number)
		printOrder(got, time.Now())
		return nil
	},
}

// collectEdits turns the flags that were actually set into edit steps.
func collectEdits(cmd *cobra.Command) ([]func(order.Order) order.Order, error) {
	var edits []func(order.Order) order.Order
	changed := cmd.Flags().Changed

	if changed("good") {
		edits = append(edits, func(o order.Order) order.Order { return order.WithGoodCount(o, editFlags.good) })
	}
	if changed("bad") {
		edits = append(edits, func(o order.Order) order.Order { return order.WithBadCount(o, editFlags.bad) })
	}
	if changed("notes") {
		edits = append(edits, func(o order.Order) order.Order { return order.WithNotes(o, editFlags.notes) })
	}
	if changed("setup-min") {
		edits = append(edits, func(o order.Order) order.Order { return order.WithSetupMinutes(o, editFlags.setupMin) })
	}
	if changed("pause-min") {
		edits = append(edits, func(o order.Order) order.Order { return order.WithPauseMinutes(o, editFlags.pauseMin) })
	}
	if changed("work-hours") {
		h := order.HoursOverride{Set: true, Hours: editFlags.workHours}
		edits = append(edits, func(o order.Order) order.Order { return order.WithWorkHours(o, h) })
	}
	if changed("setup-hours") {
		h := order.HoursOverride{Set: true, Hours: editFlags.setupHrs}
		edits = append(edits, func(o order.Order) order.Order { return order.WithSetupHours(o, h) })
	}
	if editFlags.clearWork {
		edits = append(edits, func(o order.Order) order.Order { return order.WithWorkHours(o, order.HoursOverride{}) })
	}
	if editFlags.clearSetup {
		edits = append(edits, func(o order.Order) order.Order { return order.WithSetupHours(o, order.HoursOverride{}) })
	}
	if changed("start") {
		h, m, err := parseClock(editFlags.start)
		if err != nil {
			return nil, err
		}
		edits = append(edits, func(o order.Order) order.Order { return order.WithStartClock(o, h, m) })
	}
	if changed("end") {
		h, m, err := parseClock(editFlags.end)
		if err != nil {
			return nil, err
		}
		edits = append(edits, func(o order.Order) order.Order { return order.WithEndClock(o, h, m) })
	}
	if changed("date") {
		day, err := time.ParseInLocation("2006-01-02", editFlags.date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", editFlags.date, err)
		}
		edits = append(edits, func(o order.Order) order.Order { return order.WithDate(o, day) })
	}
	return edits, nil
}

func parseClock(s string) (hour, min int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}
