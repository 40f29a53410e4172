package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mpgo/mortgage-planner/internal/calculation"
	"github.com/mpgo/mortgage-planner/internal/config"
	"github.com/mpgo/mortgage-planner/internal/domain"
	"github.com/mpgo/mortgage-planner/internal/output"
	"github.com/mpgo/mortgage-planner/internal/scenario"
)

type app struct {
	cfg    envConfig
	logger *slog.Logger
	engine *calculation.SimulationEngine
	parser *config.InputParser
}

func newApp(cfg envConfig, logger *slog.Logger) *app {
	engine := calculation.NewSimulationEngine()
	engine.SetLogger(slogAdapter{l: logger})
	return &app{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		parser: config.NewInputParser(),
	}
}

// openStore opens the scenario database lazily so commands that never touch
// persistence do not create it.
func (a *app) openStore() (*scenario.SQLiteStore, error) {
	store, err := scenario.NewSQLiteStore(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open scenario store: %w", err)
	}
	return store, nil
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mortgage-planner",
		Short:         "Compare funding strategies for a mortgage month by month",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.simulateCmd(),
		a.scheduleCmd(),
		a.exampleCmd(),
		a.scenarioCmd(),
		a.compareCmd(),
	)
	return root
}

func (a *app) simulateCmd() *cobra.Command {
	var format string
	var scenarioName string

	cmd := &cobra.Command{
		Use:   "simulate [plan.yaml]",
		Short: "Run the simulation and write a report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan *domain.Plan
			var err error
			switch {
			case scenarioName != "":
				store, serr := a.openStore()
				if serr != nil {
					return serr
				}
				defer store.Close()
				plan, err = store.Load(cmd.Context(), scenarioName)
			case len(args) == 1:
				plan, err = a.parser.LoadFromFile(args[0])
			default:
				return fmt.Errorf("provide a plan file or --scenario name")
			}
			if err != nil {
				return err
			}

			result, err := a.engine.RunPlan(cmd.Context(), plan)
			if err != nil {
				return err
			}
			path, err := output.GenerateReport(result, format, a.cfg.OutputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: "+joinFormats())
	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "simulate a stored scenario instead of a file")
	return cmd
}

func (a *app) scheduleCmd() *cobra.Command {
	var extra string

	cmd := &cobra.Command{
		Use:   "schedule <plan.yaml>",
		Short: "Print the amortization schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			extraPayment := decimal.Zero
			if extra != "" {
				extraPayment, err = decimal.NewFromString(extra)
				if err != nil || extraPayment.IsNegative() {
					return fmt.Errorf("invalid extra payment %q", extra)
				}
			}

			schedule := calculation.AmortizationSchedule(plan.Mortgage, extraPayment)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Month\tPayment\tPrincipal\tInterest\tBalance\tTotal Interest")
			for _, e := range schedule {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					e.Month,
					e.Payment.StringFixed(2),
					e.Principal.StringFixed(2),
					e.Interest.StringFixed(2),
					e.RemainingBalance.StringFixed(2),
					e.TotalInterest.StringFixed(2))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&extra, "extra", "", "extra monthly principal payment")
	return cmd
}

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "plan.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.SavePlan(a.parser.CreateExamplePlan(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", path)
			return nil
		},
	}
}

func (a *app) scenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage stored scenarios",
	}

	save := &cobra.Command{
		Use:   "save <name> <plan.yaml>",
		Short: "Save a plan file under a scenario name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.parser.LoadFromFile(args[1])
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Save(cmd.Context(), args[0], plan); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scenario %q saved\n", args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			infos, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scenarios stored")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Name\tUpdated")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\n", info.Name, info.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored scenario as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			plan, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc, err := yaml.Marshal(plan)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scenario %q deleted\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(save, list, show, del)
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var metric, strategy string

	cmd := &cobra.Command{
		Use:   "compare <scenario-a> <scenario-b>",
		Short: "Compare two stored scenarios on one metric",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			planA, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			planB, err := store.Load(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			cmp, err := a.engine.CompareScenarios(cmd.Context(),
				args[0], planA, args[1], planB,
				domain.StrategyID(strategy), domain.Metric(metric))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Comparing %s (%s strategy)\n\n", cmp.Metric, cmp.Strategy)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Month\t%s\t%s\n", cmp.NameA, cmp.NameB)
			step := len(cmp.SeriesA) / 12
			if step == 0 {
				step = 1
			}
			for i := 0; i < len(cmp.SeriesA); i += step {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, cmp.SeriesA[i].StringFixed(2), cmp.SeriesB[i].StringFixed(2))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if cmp.Crossover != nil {
				fmt.Fprintf(out, "\n%s overtakes %s at month %d\n", cmp.NameB, cmp.NameA, *cmp.Crossover)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&metric, "metric", "m", string(domain.MetricNetWorth), "metric: net_worth, mortgage_balance, savings, securities, cash_flow")
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.StrategyIncome), "strategy projection to compare")
	return cmd
}

func joinFormats() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}
