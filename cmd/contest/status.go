package main

import (
	"errors"
	"fmt"
	"strings"

	"codearena/internal/app/contest"
	"codearena/internal/domain/model"

	"github.com/spf13/cobra"
)

func newStatusCmd(gatewayURL *string) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active question, scores and timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*gatewayURL)
			if err != nil {
				return err
			}
			if err := e.ctl.Mount(cmd.Context()); err != nil {
				if errors.Is(err, contest.ErrNotAuthenticated) {
					return errors.New("no valid session; run 'contest signup' first")
				}
				return err
			}

			snap := e.ctl.Snapshot()
			fmt.Printf("Team: %s\n", e.ctl.TeamName())
			fmt.Printf("Timer: %s\n", e.ctl.Timer().FormatElapsed())
			fmt.Printf("Scores: easy %d, medium %d\n", snap.EasyScore, snap.MediumScore)

			if e.ctl.ContestComplete() {
				fmt.Println("Contest complete.")
				return nil
			}

			fmt.Printf("Active slot: %s (%d submissions left)\n", e.ctl.ActiveSlot(), e.ctl.SubmissionsRemaining())
			question := e.ctl.ActiveQuestion()
			if question == nil {
				fmt.Println("No question assigned for the active slot yet.")
				return nil
			}

			fmt.Printf("\n%s [%s]\n", question.Title, question.Difficulty)
			if full {
				printQuestion(question)
			} else {
				fmt.Println("Re-run with --full for the problem statement.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print the full problem statement")
	return cmd
}

func printQuestion(q *model.Question) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(q.ProblemDescription)
	if q.InputFormat != "" {
		fmt.Printf("\nInput:\n%s\n", q.InputFormat)
	}
	if q.OutputFormat != "" {
		fmt.Printf("\nOutput:\n%s\n", q.OutputFormat)
	}
	if q.SampleInput != "" {
		fmt.Printf("\nSample input:\n%s\n", q.SampleInput)
	}
	if q.SampleOutput != "" {
		fmt.Printf("\nSample output:\n%s\n", q.SampleOutput)
	}
}
