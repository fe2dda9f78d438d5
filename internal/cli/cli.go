package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tienda/internal/config"
	"tienda/internal/logger"
	"tienda/internal/models"
	"tienda/internal/reports"
	"tienda/internal/repositories"
	"tienda/internal/services"
	"tienda/pkg/apperror"
)

// app holds the services shared by the subcommands of one invocation.
type app struct {
	logger    *zap.Logger
	orders    *services.OrderService
	suppliers *services.SupplierService
}

func (a *app) init(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.logger = log
	a.orders = services.NewOrderService(repositories.NewMemoryOrderRepository(), log)
	a.suppliers = services.NewSupplierService(repositories.NewMemorySupplierRepository())
	return nil
}

// NewRootCommand builds the root tienda CLI command.
func NewRootCommand() *cobra.Command {
	var configFile string
	a := &app{}

	root := &cobra.Command{
		Use:           "tienda",
		Short:         "Convenience-store back-office toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(configFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")

	root.AddCommand(newIntakeCmd(a))
	root.AddCommand(newRevenueCmd())
	root.AddCommand(newDebtCmd())
	root.AddCommand(newSuppliersCmd(a))

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return apperror.From(err).ExitCode()
	}
	return 0
}

func newIntakeCmd(a *app) *cobra.Command {
	var (
		status     string
		remove     []string
		quantities map[string]int
		jsonOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "intake [payload.json]",
		Short: "Validate a mobile order form, apply edits and print the summary",
		Long: "Reads a mobile order form (JSON with proveedor, productos and optional fecha_entrega)\n" +
			"from the given file or stdin, registers it and prints the order summary and the mobile response.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			resp, order, err := a.orders.Submit(payload)
			if err != nil {
				if writeErr := writeJSON(out, resp); writeErr != nil {
					return writeErr
				}
				return err
			}

			var messages []string
			names := make([]string, 0, len(quantities))
			for name := range quantities {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				item, err := services.FindItem(order, name)
				if err != nil {
					return err
				}
				msg, err := services.SetQuantity(item, quantities[name])
				if err != nil {
					return err
				}
				messages = append(messages, msg)
			}
			for _, name := range remove {
				msg, err := services.RemoveItem(order, name)
				if err != nil {
					return err
				}
				messages = append(messages, msg)
			}
			if status != "" {
				msg, err := a.orders.UpdateOrderStatus(order.ID(), status)
				if err != nil {
					return err
				}
				messages = append(messages, msg)
			}

			if jsonOnly {
				return writeJSON(out, resp)
			}
			for _, msg := range messages {
				fmt.Fprintln(out, msg)
			}
			fmt.Fprint(out, services.RenderSummary(order))
			received, err := a.orders.TotalSpentWithSupplier(order.Supplier())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Received from %s to date: %s\n", order.Supplier(), reports.FormatAmount(received))
			fmt.Fprintln(out)
			return writeJSON(out, resp)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "set the order status after intake ("+models.StatusNames()+")")
	cmd.Flags().StringSliceVar(&remove, "remove", nil, "remove products by name after intake")
	cmd.Flags().StringToIntVar(&quantities, "qty", nil, "change product quantities, e.g. --qty Rice=4")
	cmd.Flags().BoolVar(&jsonOnly, "json", false, "print only the mobile response")
	return cmd
}

func newRevenueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revenue [week]",
		Short: "Show weekly revenue by payment method",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks := reports.Weeks()
			if len(args) == 1 {
				weeks = args
			}
			out := cmd.OutOrStdout()
			for i, week := range weeks {
				report, err := reports.WeeklyRevenue(week)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, report.Week)
				tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
				fmt.Fprintln(tw, "Payment method\tWeekly revenue")
				for _, line := range report.Lines {
					fmt.Fprintf(tw, "%s\t%s\n", line.Method, reports.FormatAmount(line.Amount))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(out, "Weekly total: %s\n", reports.FormatAmount(report.Total))
			}
			return nil
		},
	}
}

func newDebtCmd() *cobra.Command {
	var supplier, month string

	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Show what the store owes its suppliers per month",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if supplier != "" && month != "" {
				amount, err := reports.SupplierDebt(supplier, month)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Debt for %s in %s: %s\n", supplier, month, reports.FormatAmount(amount))
				return nil
			}

			suppliers := reports.DebtSuppliers()
			if supplier != "" {
				suppliers = []string{supplier}
			}
			months := reports.DebtMonths()
			if month != "" {
				months = []string{month}
			}

			tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
			fmt.Fprint(tw, "Supplier")
			for _, m := range months {
				fmt.Fprintf(tw, "\t%s", m)
			}
			fmt.Fprintln(tw)
			for _, s := range suppliers {
				fmt.Fprint(tw, s)
				for _, m := range months {
					amount, err := reports.SupplierDebt(s, m)
					if err != nil {
						if !apperror.IsNotFound(err) {
							return err
						}
						fmt.Fprint(tw, "\t-")
						continue
					}
					fmt.Fprintf(tw, "\t%s", reports.FormatAmount(amount))
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&supplier, "supplier", "", "supplier name")
	cmd.Flags().StringVar(&month, "month", "", "month, e.g. \"January 2025\"")
	return cmd
}

func newSuppliersCmd(a *app) *cobra.Command {
	var find, carries, deactivate string

	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "List the active suppliers of the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := seedSuppliers(a); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if find != "" {
				s, err := a.suppliers.FindByName(find)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\t%s\t%s\n", s.ID, s.Name, s.Company)
				fmt.Fprintf(out, "Products: %s\n", strings.Join(s.Products, ", "))
				return nil
			}

			if deactivate != "" {
				s, err := a.suppliers.FindByName(deactivate)
				if err != nil {
					return err
				}
				if err := a.suppliers.Deactivate(s.ID); err != nil {
					return err
				}
				a.logger.Info("supplier deactivated", zap.Int("id", s.ID), zap.String("name", s.Name))
				fmt.Fprintf(out, "Supplier '%s' deactivated.\n", s.Name)
			}

			var list []models.Supplier
			var err error
			if carries != "" {
				list, err = a.suppliers.Carrying(carries)
			} else {
				list, err = a.suppliers.Active()
			}
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tName\tCompany")
			for _, s := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", s.ID, s.Name, s.Company)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&find, "find", "", "look a supplier up by name")
	cmd.Flags().StringVar(&carries, "carries", "", "only list active suppliers that stock this product")
	cmd.Flags().StringVar(&deactivate, "deactivate", "", "deactivate the named supplier before listing")
	return cmd
}

// catalogue is what each supplier on the debt ledger delivers to the store.
var catalogue = map[string][]string{
	"Distribuidora Andina": {"Rice", "Oil", "Sugar", "Flour"},
	"Sabores Latinos":      {"Coffee", "Spices", "Tortillas"},
	"Frutas Selectas":      {"Bananas", "Apples", "Oranges"},
	"Lácteos del Valle":    {"Milk", "Eggs", "Cheese", "Yogurt"},
	"Panadería Santa Ana":  {"Bread", "Pastries", "Flour"},
}

// seedSuppliers registers the suppliers the store keeps debt records for.
func seedSuppliers(a *app) error {
	for _, name := range reports.DebtSuppliers() {
		supplier := &models.Supplier{Name: name, Company: name}
		for _, product := range catalogue[name] {
			supplier.AddProduct(product)
		}
		if err := a.suppliers.Register(supplier); err != nil {
			return fmt.Errorf("seed supplier %s: %w", name, err)
		}
		a.logger.Debug("seeded supplier", zap.Int("id", supplier.ID), zap.String("name", supplier.Name))
	}
	return nil
}

func readPayload(cmd *cobra.Command, args []string) (services.Payload, error) {
	if len(args) == 0 || args[0] == "-" {
		return services.DecodePayload(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	defer f.Close()
	return services.DecodePayload(f)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
