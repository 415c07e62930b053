package vocab

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vokabular/cmd/client/cmd/types"
	"vokabular/internal/app/client"
)

var (
	addLanguage  string
	addTranslate bool
)

var AddCmd = &cobra.Command{
	Use:   "add <source text> [german translation]",
	Short: "Save a new flashcard",
	Long: `Saves a foreign phrase with its German translation.

When --translate is set and no translation is given, the phrase is
translated through the server first and the result is saved.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		sourceText := args[0]
		var targetText string
		if len(args) == 2 {
			targetText = args[1]
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		language := strings.ToLower(addLanguage)

		if targetText == "" {
			if !addTranslate {
				return fmt.Errorf("give a german translation or pass --translate")
			}
			result, err := app.Translate(ctx, sourceText, language)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
			targetText = result.TranslatedText
			if language == "" {
				language = result.SourceLanguage
			}
			fmt.Printf("Translation: %s\n", targetText)
		}

		if language == "" {
			return fmt.Errorf("source language is required, pass --lang")
		}

		resp, err := app.AddCard(ctx, sourceText, targetText, language)
		if err != nil {
			return fmt.Errorf("failed to save flashcard: %w", err)
		}

		if !resp.Success {
			fmt.Printf("⚠️  %s\n", resp.Message)
			return nil
		}
		fmt.Printf("✅ Flashcard saved (id %d)\n", resp.VocabularyID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addLanguage, "lang", "l", "", "2-letter source language code")
	AddCmd.Flags().BoolVarP(&addTranslate, "translate", "t", false, "translate through the server when no translation is given")
}
