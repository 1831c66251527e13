package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"codearena/internal/app/contest"
	"codearena/internal/app/leaderboard"
	"codearena/internal/app/notify"
	"codearena/internal/domain/model"
	"codearena/internal/platform/config"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func newLeaderboardCmd(gatewayURL *string) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the current standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*gatewayURL)
			if err != nil {
				return err
			}

			interval := time.Duration(config.AppConfig.LeaderboardPollSeconds) * time.Second
			poller := leaderboard.NewPoller(e.api, notify.NewLogNotifier(), clockwork.NewRealClock(), interval)

			if !watch {
				if err := poller.FetchOnce(cmd.Context()); err != nil {
					return err
				}
				renderStandings(poller.Entries(), 0)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := poller.FetchOnce(ctx); err != nil {
				return err
			}
			renderStandings(poller.Entries(), 0)

			go poller.Run(ctx)

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					renderStandings(poller.Entries(), poller.SecondsSinceUpdate())
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep polling and re-render on each update")
	return cmd
}

func renderStandings(entries []model.LeaderboardEntry, secondsAgo int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTEAM\tEASY\tTOTAL\tTIME")
	for i, entry := range entries {
		timeTaken := "-"
		if entry.CPTimeTaken != nil {
			timeTaken = contest.FormatDuration(*entry.CPTimeTaken)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", i+1, entry.TeamName, entry.EasyScore, entry.TotalScore, timeTaken)
	}
	w.Flush()
	if secondsAgo > 0 {
		fmt.Printf("(updated %ds ago)\n", secondsAgo)
	}
	fmt.Println()
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the execution environments accepted by submit",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, l := range model.Languages {
				name := l.Name
				if l.ID == model.DefaultLanguageID {
					name += " (default)"
				}
				fmt.Fprintf(w, "%d\t%s\n", l.ID, name)
			}
			w.Flush()
		},
	}
}
