package collection

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// SavedNumbers returns the remembered order numbers, most recent first.
func (c *Collection) SavedNumbers() []string {
	out := make([]string, len(c.numbers))
	copy(out, c.numbers)
	return out
}

// remember prepends number to the saved list unless an equal entry already
// exists, compared case-insensitively. Persisted separately from the orders.
func (c *Collection) remember(number string) {
	if strings.TrimSpace(number) == "" {
		return
	}
	for _, n := range c.numbers {
		if strings.EqualFold(n, number) {
			return
		}
	}
	c.numbers = append([]string{number}, c.numbers...)
	c.persistNumbers()
}

// RemoveSavedNumber drops one entry, matched case-insensitively.
func (c *Collection) RemoveSavedNumber(number string) bool {
	for i, n := range c.numbers {
		if strings.EqualFold(n, number) {
			c.numbers = append(c.numbers[:i], c.numbers[i+1:]...)
			c.persistNumbers()
			return true
		}
	}
	return false
}

func (c *Collection) persistNumbers() {
	data, err := json.Marshal(c.numbers)
	if err == nil {
		err = c.store.Put(keySavedNumbers, string(data))
	}
	if err != nil {
		c.log.Warn("persist saved numbers", zap.Error(err))
	}
}
