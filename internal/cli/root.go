// Package cli is the command surface over the order collection. Commands
// address orders by id or by order number and take effect synchronously.
package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sadopc/orderclock/internal/collection"
	"github.com/sadopc/orderclock/internal/companion"
	"github.com/sadopc/orderclock/internal/config"
	"github.com/sadopc/orderclock/internal/order"
	"github.com/sadopc/orderclock/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "orderclock",
	Short:         "Shop-floor work order time clock",
	Long:          "orderclock tracks work orders through running, paused, setup and finished\nphases and reports total, setup, pause and net work time per order.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// app bundles the process-wide collaborators. Each command opens one app,
// runs against it and closes it.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store
	col    *collection.Collection
	bridge *companion.Bridge
}

func openApp() (*app, error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("locate config: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.Logging.Level)

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("locate database: %w", err)
	}
	s, err := store.New(dbPath)
	if err != nil {
		return nil, err
	}

	col := collection.New(s, log.Named("collection"))

	var tr companion.Transport = companion.Nop{}
	if cfg.Companion.Enabled {
		tr = &companion.Loopback{}
	}
	bridge := companion.NewBridge(col, tr, log.Named("companion"))

	return &app{cfg: cfg, log: log, store: s, col: col, bridge: bridge}, nil
}

func (a *app) close() {
	a.store.Close()
	a.log.Sync()
}

// resolve finds an order by uuid or, failing that, by number (newest match).
func (a *app) resolve(ref string) (order.Order, error) {
	if id, err := uuid.Parse(ref); err == nil {
		if o, ok := a.col.Get(id); ok {
			return o, nil
		}
	}
	for _, o := range a.col.Orders() {
		if strings.EqualFold(o.Number, ref) {
			return o, nil
		}
	}
	return order.Order{}, fmt.Errorf("no order matching %q", ref)
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func phase(o order.Order) string {
	switch {
	case o.Finished:
		return "finished"
	case o.Running && o.InSetup:
		return "setup"
	case o.Running:
		return "running"
	case o.Paused():
		return "paused"
	default:
		return "new"
	}
}

func fmtDur(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
