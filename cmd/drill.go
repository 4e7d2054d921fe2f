package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abiral/fluency/internal/content"
	"github.com/abiral/fluency/internal/engine"
	"github.com/abiral/fluency/internal/question"
	"github.com/abiral/fluency/internal/store"
	"github.com/abiral/fluency/internal/student"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const defaultLearner = "default"

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(cmd)
	},
}

func runDrill(cmd *cobra.Command) error {
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
		States:    st.StateStore(defaultLearner),
		Events:    st.EventRepo(),
		Index:     idx,
		SessionID: uuid.New().String(),
	})
	if err := eng.Initialize(ctx); err != nil {
		return fmt.Errorf("loading student state: %w", err)
	}

	fmt.Println("Answer each question, press Enter to skip, or type q to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		q, err := eng.GetNextQuestion()
		if err != nil {
			return err
		}
		if q == nil {
			fmt.Println("Nothing is due right now. Come back later.")
			return nil
		}
		if err := eng.StartQuestion(ctx, q); err != nil {
			return err
		}

		printQuestion(q)
		started := time.Now()

		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			fmt.Println("Session saved. Bye.")
			return nil
		}

		sub := engine.Submission{Answer: line}
		if line == "" || line == "s" {
			sub = engine.Submission{Skipped: true}
		} else if q.TimerSeconds > 0 && time.Since(started) > time.Duration(q.TimerSeconds)*time.Second {
			sub = engine.Submission{Answer: line, TimedOut: true}
		}

		res, err := eng.SubmitAnswer(ctx, q, sub)
		if err != nil {
			return err
		}
		printResult(q, res)
	}
}

func printQuestion(q *question.Question) {
	fmt.Printf("%s = ?\n", q.Text)
	if len(q.Choices) > 0 && q.Mode != question.ModeGrounding {
		for i, c := range q.Choices {
			fmt.Printf("  %d) %d\n", i+1, c)
		}
	}
	if q.TimerSeconds > 0 {
		fmt.Printf("  (%d seconds)\n", q.TimerSeconds)
	}
}

func printResult(q *question.Question, res *engine.SubmitAnswerResult) {
	switch {
	case res.AnswerType == student.AnswerSkipped:
		fmt.Println("Skipped.")
	case res.IsCorrect:
		fmt.Println("Correct!")
	case res.AnswerType == student.AnswerTimedOut:
		fmt.Printf("Too slow. %s = %d\n", q.Text, res.CorrectAnswer)
	default:
		fmt.Printf("Not quite. %s = %d\n", q.Text, res.CorrectAnswer)
	}
	if res.Promoted() {
		fmt.Printf("  moved up: %s\n", res.ToStageID)
	} else if res.Demoted() {
		fmt.Printf("  moved back: %s\n", res.ToStageID)
	}
	fmt.Println()
}

// resolveIndex loads the content pack named by --content, falling back
// to the built-in times tables.
func resolveIndex(cmd *cobra.Command) (*content.Index, error) {
	path, _ := cmd.Flags().GetString("content")
	if path == "" {
		return content.DefaultIndex(), nil
	}
	sets, err := content.LoadPackFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading content pack: %w", err)
	}
	return content.NewIndex(sets)
}
