package main

import (
	"os"
	"time"

	"codearena/internal/app/contest"
	"codearena/internal/app/notify"
	"codearena/internal/client"
	"codearena/internal/platform/config"
	"codearena/internal/session"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var gatewayURL string
	var verbose bool

	cmd := &cobra.Command{
		Use:           "contest",
		Short:         "CodeArena contest client",
		Long:          "Terminal client for the CodeArena contest gateway: signup, round status, submissions and the live leaderboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
			if !verbose {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&gatewayURL, "gateway", "http://localhost:8080", "Contest gateway base URL")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newSignupCmd(&gatewayURL),
		newStatusCmd(&gatewayURL),
		newSubmitCmd(&gatewayURL),
		newLeaderboardCmd(&gatewayURL),
		newAdvanceCmd(&gatewayURL),
		newLanguagesCmd(),
		newLogoutCmd(),
	)
	return cmd
}

// env bundles everything a subcommand needs against one gateway.
type env struct {
	store *session.FileStore
	api   *client.Client
	ctl   *contest.Controller
}

func newEnv(gatewayURL string) (*env, error) {
	store, err := session.NewFileStore(config.AppConfig.SessionFile)
	if err != nil {
		return nil, err
	}
	api := client.New(gatewayURL, store)
	ctl := contest.NewController(api, store, notify.NewLogNotifier(), clockwork.NewRealClock(), config.AppConfig.MaxSubmissions)
	return &env{store: store, api: api, ctl: ctl}, nil
}
