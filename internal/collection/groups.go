package collection

import (
	"time"

	"github.com/sadopc/orderclock/internal/order"
)

// dayLabel is the day key format for GroupByDay.
const dayLabel = "02.01.2006"

// GroupByDay buckets all orders by the calendar day of their date field.
// Within a bucket, collection order is preserved. Recomputed per call; the
// collection is small and local.
func (c *Collection) GroupByDay() map[string][]order.Order {
	groups := make(map[string][]order.Order)
	for _, o := range c.orders {
		key := o.Date.Format(dayLabel)
		groups[key] = append(groups[key], o)
	}
	return groups
}

// GroupFinished builds the report drill-down over finished orders:
// year → month → day-start unix timestamp → orders in collection order.
func (c *Collection) GroupFinished() map[int]map[time.Month]map[int64][]order.Order {
	groups := make(map[int]map[time.Month]map[int64][]order.Order)
	for _, o := range c.orders {
		if !o.Finished {
			continue
		}
		year, month := o.Date.Year(), o.Date.Month()
		day := order.DayStart(o.Date).Unix()

		months, ok := groups[year]
		if !ok {
			months = make(map[time.Month]map[int64][]order.Order)
			groups[year] = months
		}
		days, ok := months[month]
		if !ok {
			days = make(map[int64][]order.Order)
			months[month] = days
		}
		days[day] = append(days[day], o)
	}
	return groups
}

// FinishedYears lists the years that hold finished orders, ascending.
func (c *Collection) FinishedYears() []int {
	seen := make(map[int]bool)
	for _, o := range c.orders {
		if o.Finished {
			seen[o.Date.Year()] = true
		}
	}
	return sortedKeys(seen)
}

// FinishedMonths lists the months of a year that hold finished orders,
// ascending.
func (c *Collection) FinishedMonths(year int) []time.Month {
	seen := make(map[int]bool)
	for _, o := range c.orders {
		if o.Finished && o.Date.Year() == year {
			seen[int(o.Date.Month())] = true
		}
	}
	months := make([]time.Month, 0, len(seen))
	for _, m := range sortedKeys(seen) {
		months = append(months, time.Month(m))
	}
	return months
}

// FinishedByDay returns the finished orders of one month keyed by day-start
// unix timestamp, plus the sorted day keys for navigation.
func (c *Collection) FinishedByDay(year int, month time.Month) (map[int64][]order.Order, []int64) {
	days := make(map[int64][]order.Order)
	seen := make(map[int64]bool)
	for _, o := range c.orders {
		if !o.Finished || o.Date.Year() != year || o.Date.Month() != month {
			continue
		}
		day := order.DayStart(o.Date).Unix()
		days[day] = append(days[day], o)
		seen[day] = true
	}
	return days, sortedKeys(seen)
}
