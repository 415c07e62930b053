package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vokabular/cmd/client/cmd/types"
	"vokabular/internal/app/client"
)

var translateSourceLang string

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate a phrase into German",
	Long: `Sends the phrase through the server's translation gateway.

The source language is auto-detected unless --lang is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		text := strings.Join(args, " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.Translate(ctx, text, strings.ToLower(translateSourceLang))
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}

		fmt.Printf("%s (%s) = %s\n", text, result.SourceLanguage, result.TranslatedText)
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVarP(&translateSourceLang, "lang", "l", "", "2-letter source language code, empty for auto-detection")
}
