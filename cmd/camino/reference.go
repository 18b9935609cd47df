// Reference item commands: currency, payment, category. Items are never
// deleted; disable is the only retirement path.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trailforge/camino/internal/sqlite"
)

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Manage currencies",
}

var currencyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all currencies, including disabled ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		currencies, err := backend.Currencies()
		if err != nil {
			return err
		}
		for _, c := range currencies {
			fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  rate=%.4f  %s\n",
				c.ID, c.Name, c.ExchangeRate, enabledMark(c.Enabled))
		}
		return nil
	},
}

var currencyAddCmd = &cobra.Command{
	Use:   "add <name> <exchange-rate>",
	Short: "Add a currency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("exchange rate must be a number: %w", err)
		}

		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		id, err := backend.AddCurrency(args[0], rate)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added currency %s (id %d)\n", args[0], id)
		return nil
	},
}

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Manage payment methods",
}

var paymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all payment methods, including disabled ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		payments, err := backend.Payments()
		if err != nil {
			return err
		}
		for _, p := range payments {
			fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  type=%s  %s\n",
				p.ID, p.Name, p.Type, enabledMark(p.Enabled))
		}
		return nil
	},
}

var paymentAddCmd = &cobra.Command{
	Use:   "add <name> <type>",
	Short: "Add a payment method",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		id, err := backend.AddPayment(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added payment %s (id %d)\n", args[0], id)
		return nil
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage expense categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories, including disabled ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		categories, err := backend.Categories()
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  type=%s  %s\n",
				c.ID, c.Name, c.Type, enabledMark(c.Enabled))
		}
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name> [type]",
	Short: "Add an expense category",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryType := "Expense"
		if len(args) == 2 {
			categoryType = args[1]
		}

		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		id, err := backend.AddCategory(args[0], categoryType)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added category %s (id %d)\n", args[0], id)
		return nil
	},
}

// newEnableCmd builds the enable/disable toggles shared by the three
// reference types. pick selects the backend method to call once attached.
func newEnableCmd(kind string, enabled bool, pick func(b *sqlite.Backend) func(int64, bool) error) *cobra.Command {
	verb := "enable"
	if !enabled {
		verb = "disable"
	}
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <id>", verb),
		Short: fmt.Sprintf("%s a %s by ID", verb, kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer: %w", err)
			}

			backend, err := attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			if err := pick(backend)(id, enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d %sd\n", kind, id, verb)
			return nil
		},
	}
}

func init() {
	currencyToggle := func(b *sqlite.Backend) func(int64, bool) error { return b.SetCurrencyEnabled }
	paymentToggle := func(b *sqlite.Backend) func(int64, bool) error { return b.SetPaymentEnabled }
	categoryToggle := func(b *sqlite.Backend) func(int64, bool) error { return b.SetCategoryEnabled }

	currencyCmd.AddCommand(currencyListCmd)
	currencyCmd.AddCommand(currencyAddCmd)
	currencyCmd.AddCommand(newEnableCmd("currency", true, currencyToggle))
	currencyCmd.AddCommand(newEnableCmd("currency", false, currencyToggle))

	paymentCmd.AddCommand(paymentListCmd)
	paymentCmd.AddCommand(paymentAddCmd)
	paymentCmd.AddCommand(newEnableCmd("payment", true, paymentToggle))
	paymentCmd.AddCommand(newEnableCmd("payment", false, paymentToggle))

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(newEnableCmd("category", true, categoryToggle))
	categoryCmd.AddCommand(newEnableCmd("category", false, categoryToggle))
}
