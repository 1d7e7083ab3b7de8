package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"funny_arcade/internal/app"
	"funny_arcade/internal/model"
	"funny_arcade/internal/repository/slots_stats_repo"
	"funny_arcade/internal/service/slots"
	"funny_arcade/pkg/rng"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "arcade",
		Short:         "Funny arcade backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newSimulateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.NewApp().Run()
		},
	}
}

func newSimulateCmd() *cobra.Command {
	var (
		mode     string
		spins    int
		spinCost int
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run offline spins and print RTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if spins <= 0 || spinCost <= 0 {
				return fmt.Errorf("spins and cost must be positive")
			}

			src := rng.Global()
			if cmd.Flags().Changed("seed") {
				src = rng.Seeded(seed)
			}

			stats := slots_stats_repo.NewSlotsStatsRepository(slots_stats_repo.DefaultWindowSize)
			if err := slots.Simulate(src, model.GameMode(mode), spins, spinCost, stats); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODE\tSPINS\tJACKPOTS\tBET\tPAYOUT\tRTP %\tWINDOW RTP %")
			for _, st := range stats.Stats() {
				if st.TotalSpins == 0 {
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.2f\t%.2f\n",
					st.Mode, st.TotalSpins, st.Jackpots, st.TotalBet, st.TotalPayout, st.RTP, st.WindowRTP)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(model.ModeGrid3x3), "game mode: classic, grid3x3, retro, jackpot")
	cmd.Flags().IntVar(&spins, "spins", 100000, "number of spins")
	cmd.Flags().IntVar(&spinCost, "cost", 10, "spin cost")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible runs")
	return cmd
}
