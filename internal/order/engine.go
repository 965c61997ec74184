package order

import (
	"time"

	"github.com/google/uuid"
)

// Transition functions take an order by value and return the updated copy,
// so a transition either applies completely or not at all. Guard rejections
// return the input unchanged; callers inspect the result, no error signals.

// Start creates a new running order stamped at now.
func Start(number string, now time.Time) Order {
	t := now
	return Order{
		ID:           uuid.New(),
		Number:       number,
		Date:         now,
		StartTime:    &t,
		Running:      true,
		LastResumeAt: &t,
	}
}

// TogglePause flips between running and paused. No-op on a finished order
// unless it has been made editable.
//
// Pausing while in setup books the open setup interval first; the pause
// interval itself is booked when the pause closes (on resume or finish).
func TogglePause(o Order, now time.Time) Order {
	if o.Finished && !o.Editable {
		return o
	}
	if o.Running {
		if o.InSetup {
			o.SetupSeconds += secondsSince(o.LastResumeAt, now)
			o.InSetup = false
		}
		o.Running = false
		o.LastResumeAt = nil
		t := now
		o.LastPauseStartAt = &t
		return o
	}
	if o.LastPauseStartAt != nil {
		o.PauseSeconds += secondsSince(o.LastPauseStartAt, now)
		o.LastPauseStartAt = nil
	}
	if o.StartTime == nil {
		t := now
		o.StartTime = &t
	}
	t := now
	o.LastResumeAt = &t
	o.Running = true
	return o
}

// ToggleSetup flips setup mode. Only valid while running; no-op otherwise.
// Leaving setup books the interval and the remaining running time starts a
// fresh work interval.
func ToggleSetup(o Order, now time.Time) Order {
	if !o.Running {
		return o
	}
	if o.InSetup {
		o.SetupSeconds += secondsSince(o.LastResumeAt, now)
		o.InSetup = false
	} else {
		o.InSetup = true
	}
	t := now
	o.LastResumeAt = &t
	return o
}

// Finish closes whichever interval is open (setup while running in setup,
// or a live pause) and seals the order. Plain running time is never booked;
// NetWorkTime derives it. No-op on an already finished, non-editable order.
func Finish(o Order, now time.Time) Order {
	if o.Finished && !o.Editable {
		return o
	}
	if o.Running && o.InSetup {
		o.SetupSeconds += secondsSince(o.LastResumeAt, now)
		o.InSetup = false
	}
	if o.LastPauseStartAt != nil {
		o.PauseSeconds += secondsSince(o.LastPauseStartAt, now)
		o.LastPauseStartAt = nil
	}
	o.Running = false
	o.Finished = true
	o.Editable = false
	o.LastResumeAt = nil
	t := now
	o.EndTime = &t
	return o
}

// SetEditable flips the correction escape hatch on a finished order.
func SetEditable(o Order, editable bool) Order {
	o.Editable = editable
	return o
}

func secondsSince(t *time.Time, now time.Time) int64 {
	if t == nil {
		return 0
	}
	d := int64(now.Sub(*t).Seconds())
	if d < 0 {
		return 0
	}
	return d
}
