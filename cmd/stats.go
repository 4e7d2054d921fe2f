package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/abiral/fluency/internal/engine"
	"github.com/abiral/fluency/internal/stage"
	"github.com/abiral/fluency/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		idx, err := resolveIndex(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		eng := engine.New(engine.Options{
			States: st.StateStore(defaultLearner),
			Events: st.EventRepo(),
			Index:  idx,
		})
		if err := eng.Initialize(ctx); err != nil {
			return fmt.Errorf("loading student state: %w", err)
		}

		state := eng.State()
		ladder := stage.DefaultLadder()

		byKind := map[stage.Kind]int{}
		for _, item := range state.Facts {
			stg, ok := ladder.ByID(item.StageID)
			if !ok {
				continue
			}
			byKind[stg.Kind]++
		}

		fmt.Printf("Facts tracked: %d\n", len(state.Facts))
		kinds := []stage.Kind{
			stage.KindAssessment, stage.KindGrounding,
			stage.KindPracticeSlow, stage.KindPracticeFast,
			stage.KindReview, stage.KindRepetition, stage.KindMastered,
		}
		for _, k := range kinds {
			if n := byKind[k]; n > 0 {
				fmt.Printf("  %-14s %d\n", k.String(), n)
			}
		}

		fmt.Printf("Difficulty: %s\n", eng.CurrentDifficulty().Name)

		accuracy, total, err := st.EventRepo().AnswerAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("reading answer history: %w", err)
		}
		if total > 0 {
			fmt.Printf("Lifetime accuracy: %.0f%% over %d answers\n", accuracy*100, total)
		}

		if len(state.Stats) > 0 {
			fmt.Println("\nMost missed facts:")
			type missed struct {
				id string
				n  int
			}
			var worst []missed
			for id, s := range state.Stats {
				if s.TimesIncorrect > 0 {
					worst = append(worst, missed{id, s.TimesIncorrect})
				}
			}
			sort.Slice(worst, func(i, j int) bool {
				if worst[i].n != worst[j].n {
					return worst[i].n > worst[j].n
				}
				return worst[i].id < worst[j].id
			})
			if len(worst) > 5 {
				worst = worst[:5]
			}
			for _, w := range worst {
				fmt.Printf("  %-6s missed %d times\n", w.id, w.n)
			}
		}
		return nil
	},
}
