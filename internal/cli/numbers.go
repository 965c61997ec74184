package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var numbersRemove string

func init() {
	numbersCmd.Flags().StringVar(&numbersRemove, "remove", "", "forget one saved number")
	rootCmd.AddCommand(numbersCmd)
}

var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Show the order numbers remembered for pre-filling",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if numbersRemove != "" {
			if !a.col.RemoveSavedNumber(numbersRemove) {
				return fmt.Errorf("no saved number %q", numbersRemove)
			}
			fmt.Printf("forgot %s\n", numbersRemove)
			return nil
		}

		numbers := a.col.SavedNumbers()
		if len(numbers) == 0 {
			fmt.Println("no saved numbers")
			return nil
		}
		for _, n := range numbers {
			fmt.Println(n)
		}
		return nil
	},
}
