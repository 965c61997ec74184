// Package order holds the work-order record, its derived-time formulas and
// the transition functions that move an order through its lifecycle.
//
// All time math takes "now" as an explicit parameter; nothing in this package
// reads the wall clock, so every quantity is deterministic and testable.
package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Order is one unit of tracked manual work.
//
// Accrual fields hold whole seconds already booked from closed intervals.
// LastResumeAt is set exactly while the order is running; LastPauseStartAt
// only while a live, unbooked pause is open.
type Order struct {
	ID     uuid.UUID `json:"id"`
	Number string    `json:"number"`
	// Date is the calendar day the order belongs to, used for grouping.
	// Distinct from StartTime/EndTime, which retroactive edits may move.
	Date      time.Time  `json:"date"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`

	SetupSeconds int64 `json:"setupAccrued"`
	PauseSeconds int64 `json:"pauseAccrued"`

	GoodCount int    `json:"goodCount"`
	BadCount  int    `json:"badCount"`
	Notes     string `json:"notes"`

	Running  bool `json:"isRunning"`
	InSetup  bool `json:"isInSetup"`
	Finished bool `json:"isFinished"`
	Editable bool `json:"isEditable"`

	LastResumeAt     *time.Time `json:"lastResumeAt,omitempty"`
	LastPauseStartAt *time.Time `json:"lastPauseStartAt,omitempty"`

	WorkHours  HoursOverride `json:"manualWorkHours"`
	SetupHours HoursOverride `json:"manualSetupHours"`
}

// HoursOverride replaces a computed time quantity with a fixed hour value.
// The zero value means "computed"; Set selects the manual branch so call
// sites handle the choice explicitly instead of testing a nilable number.
type HoursOverride struct {
	Set   bool
	Hours float64
}

// Seconds converts the override to whole seconds.
func (h HoursOverride) Seconds() int64 {
	return int64(h.Hours * 3600)
}

// MarshalJSON keeps the persisted shape a nullable number.
func (h HoursOverride) MarshalJSON() ([]byte, error) {
	if !h.Set {
		return []byte("null"), nil
	}
	return json.Marshal(h.Hours)
}

func (h *HoursOverride) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = HoursOverride{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*h = HoursOverride{Set: true, Hours: v}
	return nil
}

// Paused reports whether the order sits between start and finish without
// running. At most one of Running and Paused is true.
func (o Order) Paused() bool {
	return o.StartTime != nil && !o.Running && !o.Finished
}

// TotalSeconds is the span from start to end (or to now while unfinished),
// 0 when the order has not started or the span is negative.
func (o Order) TotalSeconds(now time.Time) int64 {
	if o.StartTime == nil {
		return 0
	}
	end := now
	if o.EndTime != nil {
		end = *o.EndTime
	}
	d := int64(end.Sub(*o.StartTime).Seconds())
	if d < 0 {
		return 0
	}
	return d
}

// SetupTime is the booked setup seconds plus the open setup interval while
// running in setup. A manual setup override replaces the computed value.
// Clamped to [0, TotalSeconds].
func (o Order) SetupTime(now time.Time) int64 {
	total := o.TotalSeconds(now)
	if o.SetupHours.Set {
		return clamp(o.SetupHours.Seconds(), total)
	}
	s := o.SetupSeconds
	if o.Running && o.InSetup && o.LastResumeAt != nil {
		s += int64(now.Sub(*o.LastResumeAt).Seconds())
	}
	return clamp(s, total)
}

// PauseTime is the booked pause seconds plus the open pause interval,
// bounded by the order's end. Clamped to [0, TotalSeconds].
func (o Order) PauseTime(now time.Time) int64 {
	total := o.TotalSeconds(now)
	p := o.PauseSeconds
	if !o.Running && o.LastPauseStartAt != nil {
		end := now
		if o.EndTime != nil && o.EndTime.Before(now) {
			end = *o.EndTime
		}
		if d := int64(end.Sub(*o.LastPauseStartAt).Seconds()); d > 0 {
			p += d
		}
	}
	return clamp(p, total)
}

// NetWorkTime is the productive remainder: total minus setup minus pause,
// floored at zero.
func (o Order) NetWorkTime(now time.Time) int64 {
	n := o.TotalSeconds(now) - o.SetupTime(now) - o.PauseTime(now)
	if n < 0 {
		return 0
	}
	return n
}

// TimerElapsed is the running-clock value shown by the live ticker: the
// pause accumulator reused as its booked base, plus time since the last
// resume while running outside setup. A manual work override replaces it.
// Kept separate from NetWorkTime; the two answer different questions and
// are both part of the exposed surface.
func (o Order) TimerElapsed(now time.Time) int64 {
	if o.WorkHours.Set {
		return o.WorkHours.Seconds()
	}
	e := o.PauseSeconds
	if o.Running && !o.InSetup && o.LastResumeAt != nil {
		e += int64(now.Sub(*o.LastResumeAt).Seconds())
	}
	if e < 0 {
		return 0
	}
	return e
}

// DayStart truncates t to midnight in its own location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clamp(v, hi int64) int64 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
