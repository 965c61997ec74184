package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/orderclock/internal/order"
)

func init() {
	rootCmd.AddCommand(startCmd, pauseCmd, setupCmd, finishCmd, removeCmd, editableCmd, listCmd)
}

var startCmd = &cobra.Command{
	Use:   "start <number>",
	Short: "Start a new work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		o := a.col.Add(args[0], time.Now())
		fmt.Printf("started %s (%s)\n", o.Number, o.ID)
		return nil
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause <id|number>",
	Short: "Pause or resume an order",
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
		got, _ := a.col.TogglePause(o.ID, time.Now())
		fmt.Printf("%s is now %s\n", got.Number, phase(got))
		return nil
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup <id|number>",
	Short: "Toggle setup mode on a running order",
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
		got, _ := a.col.ToggleSetup(o.ID, time.Now())
		if got.InSetup == o.InSetup {
			fmt.Printf("%s is not running; setup unchanged\n", got.Number)
			return nil
		}
		fmt.Printf("%s is now %s\n", got.Number, phase(got))
		return nil
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish <id|number>",
	Short: "Finish an order",
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
		now := time.Now()
		got, _ := a.col.Finish(o.ID, now)
		fmt.Printf("finished %s: total %s, setup %s, pause %s, work %s\n",
			got.Number,
			fmtDur(got.TotalSeconds(now)),
			fmtDur(got.SetupTime(now)),
			fmtDur(got.PauseTime(now)),
			fmtDur(got.NetWorkTime(now)))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id|number>",
	Short: "Delete an order",
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
		a.col.Remove(o.ID)
		fmt.Printf("removed %s\n", o.Number)
		return nil
	},
}

var editableCmd = &cobra.Command{
	Use:   "editable <id|number> <on|off>",
	Short: "Allow or forbid corrections on a finished order",
	Args:  cobra.ExactArgs(2),
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
		switch args[1] {
		case "on":
			a.col.SetEditable(o.ID, true)
		case "off":
			a.col.SetEditable(o.ID, false)
		default:
			return fmt.Errorf("expected on or off, got %q", args[1])
		}
		fmt.Printf("%s editable: %s\n", o.Number, args[1])
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders with their live time breakdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		orders := a.col.Orders()
		if len(orders) == 0 {
			fmt.Println("no orders")
			return nil
		}
		now := time.Now()
		fmt.Printf("%-12s %-10s %-10s %9s %9s %9s %9s %5s/%-5s\n",
			"NUMBER", "DATE", "PHASE", "TOTAL", "SETUP", "PAUSE", "WORK", "GOOD", "BAD")
		for _, o := range orders {
			printOrder(o, now)
		}
		return nil
	},
}

func printOrder(o order.Order, now time.Time) {
	fmt.Printf("%-12s %-10s %-10s %9s %9s %9s %9s %5d/%-5d\n",
		o.Number,
		o.Date.Format("02.01.2006"),
		phase(o),
		fmtDur(o.TotalSeconds(now)),
		fmtDur(o.SetupTime(now)),
		fmtDur(o.PauseTime(now)),
		fmtDur(o.NetWorkTime(now)),
		o.GoodCount, o.BadCount)
}
