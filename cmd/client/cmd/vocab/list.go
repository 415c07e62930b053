package vocab

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vokabular/cmd/client/cmd/types"
	"vokabular/internal/app/client"
	"vokabular/internal/domain/vocabulary"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved flashcards grouped by language",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		list, err := app.ListCards(ctx)
		if err != nil {
			return fmt.Errorf("failed to load flashcards: %w", err)
		}

		if len(list.Languages) == 0 {
			fmt.Println("No flashcards saved yet. Add one: vokabular vocab add")
			return nil
		}

		heading := color.New(color.Bold)
		for _, group := range list.Languages {
			heading.Printf("%s (%s)\n", group.LanguageName, group.Language)
			for _, card := range group.Vocabularies {
				fmt.Printf("  [%s] %s = %s\n",
					statusColor(card.Status).Sprint(card.Status.GermanName()),
					card.SourceText, card.TargetText)
			}
			fmt.Println()
		}
		return nil
	},
}

func statusColor(status vocabulary.Status) *color.Color {
	switch status {
	case vocabulary.StatusLearned:
		return color.New(color.FgGreen)
	case vocabulary.StatusLearning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
