// Package companion keeps a secondary device in step with the order
// collection: it publishes a reduced snapshot of non-finished orders after
// every mutation and translates inbound remote commands into collection
// calls. Delivery is fire-and-forget; the Transport owns the channel.
package companion

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sadopc/orderclock/internal/collection"
)

// Remote command actions. The wire strings are the companion protocol and
// must not change.
const (
	ActionAdd           = "add"
	ActionPauseOrResume = "pauseOrResume"
	ActionToggleSetup   = "toggleRuest"
	ActionEnd           = "end"
)

// SnapshotEntry is the per-order projection sent to the companion. No
// accrual numbers travel; the companion recomputes or just displays phase.
type SnapshotEntry struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Running  bool      `json:"isRunning"`
	InSetup  bool      `json:"isInSetup"`
	Finished bool      `json:"isFinished"`
	Date     time.Time `json:"date"`
}

// Command is the inbound remote message.
type Command struct {
	Action string `json:"action"`
	Number string `json:"number,omitempty"`
	ID     string `json:"id,omitempty"`
}

// Bridge wires one collection to one transport.
type Bridge struct {
	col *collection.Collection
	tr  Transport
	log *zap.Logger
	now func() time.Time
}

// NewBridge registers the bridge on both sides: collection mutations publish
// a snapshot, transport commands mutate the collection.
func NewBridge(col *collection.Collection, tr Transport, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Bridge{col: col, tr: tr, log: log, now: time.Now}
	col.SetOnChange(b.Publish)
	tr.OnCommand(b.HandleCommand)
	return b
}

// Snapshot projects every non-finished order, collection order preserved.
func (b *Bridge) Snapshot() []SnapshotEntry {
	var entries []SnapshotEntry
	for _, o := range b.col.Orders() {
		if o.Finished {
			continue
		}
		entries = append(entries, SnapshotEntry{
			ID:       o.ID.String(),
			Number:   o.Number,
			Running:  o.Running,
			InSetup:  o.InSetup,
			Finished: o.Finished,
			Date:     o.Date,
		})
	}
	return entries
}

// Publish encodes the current snapshot and hands it to the transport.
// Delivery failures are logged and dropped, never retried here.
func (b *Bridge) Publish() {
	data, err := json.Marshal(b.Snapshot())
	if err == nil {
		err = b.tr.SendSnapshot(data)
	}
	if err != nil {
		b.log.Warn("publish snapshot", zap.Error(err))
	}
}

// HandleCommand decodes and applies one remote command. Unknown actions and
// malformed payloads are ignored.
func (b *Bridge) HandleCommand(data []byte) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		b.log.Debug("malformed remote command", zap.Error(err))
		return
	}
	now := b.now()

	switch cmd.Action {
	case ActionAdd:
		if cmd.Number == "" {
			b.log.Debug("add command without number")
			return
		}
		b.col.Add(cmd.Number, now)
	case ActionPauseOrResume, ActionToggleSetup, ActionEnd:
		id, err := uuid.Parse(cmd.ID)
		if err != nil {
			b.log.Debug("remote command with bad id", zap.String("id", cmd.ID))
			return
		}
		switch cmd.Action {
		case ActionPauseOrResume:
			b.col.TogglePause(id, now)
		case ActionToggleSetup:
			b.col.ToggleSetup(id, now)
		case ActionEnd:
			b.col.Finish(id, now)
		}
	default:
		b.log.Debug("unknown remote action", zap.String("action", cmd.Action))
	}
}
