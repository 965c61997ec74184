package order

import "time"

// Field edits for retroactive corrections. Each returns the rewritten copy;
// permission gating (finished + editable) is the caller's concern.

func WithGoodCount(o Order, n int) Order {
	if n < 0 {
		n = 0
	}
	o.GoodCount = n
	return o
}

func WithBadCount(o Order, n int) Order {
	if n < 0 {
		n = 0
	}
	o.BadCount = n
	return o
}

func WithNotes(o Order, notes string) Order {
	o.Notes = notes
	return o
}

// WithSetupMinutes overwrites the booked setup accumulator, minutes in.
func WithSetupMinutes(o Order, min int64) Order {
	if min < 0 {
		min = 0
	}
	o.SetupSeconds = min * 60
	return o
}

// WithPauseMinutes overwrites the booked pause accumulator, minutes in.
func WithPauseMinutes(o Order, min int64) Order {
	if min < 0 {
		min = 0
	}
	o.PauseSeconds = min * 60
	return o
}

func WithWorkHours(o Order, h HoursOverride) Order {
	o.WorkHours = h
	return o
}

func WithSetupHours(o Order, h HoursOverride) Order {
	o.SetupHours = h
	return o
}

// WithStartClock moves the start to the given time of day, keeping the
// calendar date the start already sits on (or the order's date when unset).
func WithStartClock(o Order, hour, min int) Order {
	base := o.Date
	if o.StartTime != nil {
		base = *o.StartTime
	}
	t := time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
	o.StartTime = &t
	return o
}

// WithEndClock moves the end to the given time of day on its existing date.
func WithEndClock(o Order, hour, min int) Order {
	base := o.Date
	if o.EndTime != nil {
		base = *o.EndTime
	}
	t := time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
	o.EndTime = &t
	return o
}

// WithDate moves the order to another calendar day, shifting start and end
// by the same whole-day delta so times of day survive the move.
func WithDate(o Order, day time.Time) Order {
	delta := DayStart(day).Sub(DayStart(o.Date))
	o.Date = o.Date.Add(delta)
	if o.StartTime != nil {
		t := o.StartTime.Add(delta)
		o.StartTime = &t
	}
	if o.EndTime != nil {
		t := o.EndTime.Add(delta)
		o.EndTime = &t
	}
	return o
}
