package cmd

import (
	"fmt"

	"github.com/abiral/fluency/internal/question"
	"github.com/abiral/fluency/internal/stage"
	"github.com/spf13/cobra"
)

// previewCmd is a stateless developer tool: it prints the stage ladder
// and loaded content without touching the database.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Inspect the stage ladder and content (no database access)",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := resolveIndex(cmd)
		if err != nil {
			return err
		}
		ladder := stage.DefaultLadder()

		fmt.Println("Stages:")
		for _, stg := range ladder.Stages() {
			fmt.Printf("  %-16s kind=%-12s", stg.ID, stg.Kind.String())
			if stg.TimerSeconds > 0 {
				fmt.Printf(" timer=%ds", stg.TimerSeconds)
			}
			if stg.Delay > 0 {
				fmt.Printf(" delay=%s", stg.Delay)
			}
			fmt.Println()
		}

		fmt.Printf("\nContent: %d facts in %d sets\n", idx.FactCount(), len(idx.FactSets()))
		for _, set := range idx.FactSets() {
			fmt.Printf("  %-10s %d facts\n", set.ID, len(set.Facts))
		}

		if sample, _ := cmd.Flags().GetBool("sample"); sample {
			factory := question.NewFactory(nil)
			facts := idx.AllFacts()
			if len(facts) > 0 {
				q := factory.CreateQuestionForStage(facts[0], ladder.First())
				fmt.Printf("\nSample question (%s): %s = ?  choices=%v\n", q.StageID, q.Text, q.Choices)
			}
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().Bool("sample", false, "Print a sample question")
}
