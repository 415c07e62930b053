package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vokabular/cmd/client/cmd/types"
	"vokabular/internal/app/client"
)

var learnCmd = &cobra.Command{
	Use:   "learn [language]",
	Short: "Practice flashcards",
	Long: `Runs a practice session.

Without a language argument the per-language progress is shown. With a
language, up to 20 open or learning flashcards are practiced in random
order. A correct answer moves the card one step towards learned, a
wrong answer resets it to open.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		if len(args) == 0 {
			return showOverview(cmd.Context(), app)
		}
		return runSession(cmd.Context(), app, strings.ToLower(args[0]))
	},
}

func showOverview(ctx context.Context, app *client.App) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	overview, err := app.Overview(ctx)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	if len(overview.Languages) == 0 {
		fmt.Println("No flashcards saved yet. Add one: vokabular vocab add")
		return nil
	}

	heading := color.New(color.Bold)
	for _, entry := range overview.Languages {
		heading.Printf("%s (%s)\n", entry.LanguageName, entry.Language)
		fmt.Printf("  to learn: %d   learned: %d   total: %d\n",
			entry.Counts.ToLearn, entry.Counts.Learned, entry.Counts.Total)
	}
	fmt.Println()
	fmt.Println("Start a session: vokabular learn <language>")
	return nil
}

func runSession(ctx context.Context, app *client.App, language string) error {
	cards, offline, err := app.StartSession(ctx, language)
	if err != nil {
		return err
	}
	if offline {
		fmt.Println("⚠️  Server unreachable, practicing against the local cache.")
	}
	if len(cards) == 0 {
		fmt.Println("Nothing to learn for this language. 🎉")
		return nil
	}

	right := color.New(color.FgGreen, color.Bold)
	wrong := color.New(color.FgRed, color.Bold)
	reader := bufio.NewReader(os.Stdin)
	correctCount := 0

	fmt.Printf("=== Practice session: %s (%d cards) ===\n\n", language, len(cards))

	for i, card := range cards {
		fmt.Printf("%d/%d  %s\n", i+1, len(cards), card.SourceText)
		fmt.Print("German: ")

		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		answer = strings.TrimSpace(answer)

		correct := strings.EqualFold(answer, card.TargetText)
		if correct {
			right.Println("Richtig!")
			correctCount++
		} else {
			wrong.Printf("Falsch. Correct answer: %s\n", card.TargetText)
		}

		status, err := app.Advance(ctx, card, correct, offline)
		if err != nil {
			fmt.Printf("⚠️  failed to record answer: %v\n", err)
		} else {
			fmt.Printf("Status: %s\n", status.GermanName())
		}
		fmt.Println()
	}

	fmt.Printf("Session finished: %d/%d correct.\n", correctCount, len(cards))
	if correctCount == len(cards) {
		right.Println("Perfekt!")
	}
	return nil
}
