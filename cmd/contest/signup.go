package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSignupCmd(gatewayURL *string) *cobra.Command {
	var teamName string
	var password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a team and start the round",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*gatewayURL)
			if err != nil {
				return err
			}

			resp, err := e.api.Signup(cmd.Context(), teamName, password)
			if err != nil {
				log.Error().Err(err).Msg("signup failed")
				return err
			}
			if err := e.store.Set(resp.TeamID, teamName, resp.Token); err != nil {
				return fmt.Errorf("signed up but could not persist session: %w", err)
			}

			round, err := e.api.StartRound(cmd.Context(), resp.TeamID)
			if err != nil {
				log.Error().Err(err).Msg("round start failed")
				return err
			}

			fmt.Printf("Team %q registered.\n", teamName)
			if round.EasyQuestion != nil {
				fmt.Printf("First question: %s\n", round.EasyQuestion.Title)
			}
			fmt.Println("Run 'contest status' to view the active question.")
			return nil
		},
	}

	cmd.Flags().StringVar(&teamName, "team", "", "Team name")
	cmd.Flags().StringVar(&password, "password", "", "Team password")
	cmd.MarkFlagRequired("team")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv("")
			if err != nil {
				return err
			}
			if err := e.store.Clear(); err != nil {
				return err
			}
			fmt.Println("Session cleared.")
			return nil
		},
	}
}
