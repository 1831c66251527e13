package main

import (
	"errors"
	"fmt"
	"os"

	"codearena/internal/app/contest"
	"codearena/internal/domain/model"

	"github.com/spf13/cobra"
)

func newSubmitCmd(gatewayURL *string) *cobra.Command {
	var file string
	var languageID int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a solution file for the active question",
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
			if err := e.ctl.SetLanguage(languageID); err != nil {
				return fmt.Errorf("%w; run 'contest languages' for the catalog", err)
			}

			source, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read solution file: %w", err)
			}

			slotBefore := e.ctl.ActiveSlot()
			result, err := e.ctl.Submit(cmd.Context(), string(source))
			if err != nil {
				return err
			}

			printResult(result)

			// The result display has been consumed; dismissing it
			// refreshes scores and may advance the active slot.
			if err := e.ctl.DismissResult(cmd.Context()); err != nil {
				return err
			}
			if e.ctl.ActiveSlot() != slotBefore {
				fmt.Println("\nAdvanced to the medium question. Run 'contest status --full' to view it.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the solution source file")
	cmd.Flags().IntVarP(&languageID, "language", "l", model.DefaultLanguageID, "Execution environment id")
	cmd.MarkFlagRequired("file")
	return cmd
}

func printResult(r *model.SubmissionResult) {
	fmt.Printf("Status: %s\n", r.Status)
	fmt.Printf("Score: %d\n", r.Score)
	fmt.Printf("Test cases: %d/%d passed\n", r.PassedTestcases, r.TotalTestcases)
	fmt.Printf("Attempt %d, %d remaining\n", r.SubmissionNumber, r.SubmissionsRemaining)

	for _, d := range r.Details {
		mark := "PASS"
		if !d.Passed {
			mark = "FAIL"
		}
		if d.Hidden {
			fmt.Printf("  [%s] %s (hidden)\n", mark, d.TestCaseID)
			continue
		}
		fmt.Printf("  [%s] %s (%ss, %dKB)\n", mark, d.TestCaseID, d.Time, d.MemoryKb)
		if d.Passed {
			continue
		}
		if d.CompileOutput != nil && *d.CompileOutput != "" {
			fmt.Printf("        compile output: %s\n", *d.CompileOutput)
		}
		if d.Stderr != nil && *d.Stderr != "" {
			fmt.Printf("        stderr: %s\n", *d.Stderr)
		}
		if d.ExpectedOutput != nil && d.Stdout != nil {
			fmt.Printf("        expected: %s\n", *d.ExpectedOutput)
			fmt.Printf("        got:      %s\n", *d.Stdout)
		}
	}
}

func newAdvanceCmd(gatewayURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "advance",
		Short: "Move on to the medium question",
		Long:  "Moves the active slot from easy to medium. The transition is one-way; there is no going back to the easy question.",
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
			if e.ctl.ActiveSlot() == contest.SlotMedium {
				fmt.Println("Already on the medium question.")
				return nil
			}
			if e.ctl.Snapshot().MediumQuestion == nil {
				return errors.New("no medium question assigned yet")
			}

			if err := e.ctl.AdvanceToMedium(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Advanced to the medium question. Run 'contest status --full' to view it.")
			return nil
		},
	}
}
