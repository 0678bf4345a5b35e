package main

import (
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/config/env"
	"baccarat_sim/internal/model"
	"baccarat_sim/internal/repository/run_cache_repo"
	"baccarat_sim/internal/service/simulation"
	"baccarat_sim/pkg/money"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	games  int
	unit   int
	steps  int
	seed   int64
	ledger string
	csv    string
}

func newSimulateCmd(configPath *string) *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate one shoe and rank every strategy against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.NewSimulationConfigFromYAML(*configPath)
			if err != nil {
				log.Printf("simulation config %q not loaded, using defaults: %v", *configPath, err)
				cfg = env.DefaultSimulationConfig()
			}

			req := model.RunRequest{
				ShoeLength: opts.games,
				UnitStake:  opts.unit,
				MaxSteps:   opts.steps,
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &opts.seed
			}

			return runSimulate(cmd, cfg, req, opts)
		},
	}

	cmd.Flags().IntVar(&opts.games, "games", 0, "shoe length (0 = config default)")
	cmd.Flags().IntVar(&opts.unit, "unit", 0, "unit stake in scale units (0 = config default)")
	cmd.Flags().IntVar(&opts.steps, "steps", 0, "max progression steps (0 = config default)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for a reproducible shoe")
	cmd.Flags().StringVar(&opts.ledger, "ledger", "", "print the ledger of position/rule, e.g. always_banker/flat")
	cmd.Flags().StringVar(&opts.csv, "csv", "", "write the ranked table to this CSV file")

	return cmd
}

func runSimulate(cmd *cobra.Command, cfg config.SimulationConfig, req model.RunRequest, opts simulateOptions) error {
	ctx := cmd.Context()
	serv := simulation.NewSimulationService(cfg, run_cache_repo.NewRunCacheRepository())

	run, err := serv.Run(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d, %d games, unit %s, max steps %d\n\n",
		run.Seed, len(run.Shoe), money.Format(run.Params.UnitStake), run.Params.MaxSteps)

	renderStats(out, run.Stats)
	renderRoad(out, run.Road)
	renderRanking(out, run.Ranking, cfg.StakeScale())

	if opts.ledger != "" {
		position, rule, err := parseStrategy(opts.ledger)
		if err != nil {
			return err
		}
		summary, err := serv.Strategy(ctx, position, rule)
		if err != nil {
			return err
		}
		renderLedger(out, summary)
	}

	if opts.csv != "" {
		f, err := os.Create(opts.csv)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := serv.Export(ctx, f); err != nil {
			return err
		}
		fmt.Fprintf(out, "ranking written to %s\n", opts.csv)
	}
	return nil
}

func parseStrategy(s string) (model.PositionStrategy, model.StakeRule, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ledger must be position/rule, got %q", s)
	}
	position, err := model.ParsePositionStrategy(parts[0])
	if err != nil {
		return 0, 0, err
	}
	rule, err := model.ParseStakeRule(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return position, rule, nil
}

func renderStats(w io.Writer, stats model.ShoeStats) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("outcome", "count", "percent")
	for _, o := range model.Outcomes {
		t.Row(o.String(), strconv.Itoa(stats.Counts[o]), fmt.Sprintf("%.1f%%", stats.Percent[o]))
	}
	t.Row("B6", strconv.Itoa(stats.BonusCount), "")
	fmt.Fprintln(w, t.Render())
}

// renderRoad рисует большую дорогу: 6 строк, таи отмечены цифрой после символа
func renderRoad(w io.Writer, road model.Road) {
	if road.Columns == 0 {
		fmt.Fprintf(w, "big road is empty (%d ties)\n\n", road.LeadingTies)
		return
	}

	grid := make([][]string, 6)
	for r := range grid {
		grid[r] = make([]string, road.Columns)
		for c := range grid[r] {
			grid[r][c] = " . "
		}
	}
	for _, cell := range road.Cells {
		mark := cell.Outcome.String()
		if cell.Bonus {
			mark += "*"
		} else {
			mark += " "
		}
		if cell.Ties > 0 {
			mark = mark[:1] + strconv.Itoa(min(cell.Ties, 9))
		}
		grid[cell.Row][cell.Column] = mark + " "
	}

	fmt.Fprintln(w, "big road:")
	for _, row := range grid {
		fmt.Fprintln(w, strings.Join(row, ""))
	}
	fmt.Fprintln(w)
}

func renderRanking(w io.Writer, ranking []model.StrategySummary, scale int64) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "position", "rule", "final", "units")
	for i, s := range ranking {
		t.Row(strconv.Itoa(i+1), s.Position.String(), s.Rule.String(),
			money.Format(s.FinalBalance), money.Units(s.FinalBalance, scale))
	}
	fmt.Fprintln(w, t.Render())
}

func renderLedger(w io.Writer, s *model.StrategySummary) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("round", "result", "bet", "stake", "step", "profit", "balance", "note")
	for _, e := range s.Ledger {
		t.Row(strconv.Itoa(e.Round), e.Outcome.String(), e.Bet.String(), money.Format(e.Stake),
			strconv.Itoa(e.Step), money.Format(e.Profit), money.Format(e.Balance), e.Note)
	}
	fmt.Fprintf(w, "ledger: %s\n", s.Name())
	fmt.Fprintln(w, t.Render())
}
