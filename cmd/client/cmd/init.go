package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vokabular/cmd/client/cmd/auth"
	"vokabular/cmd/client/cmd/types"
	"vokabular/cmd/client/cmd/vocab"
	"vokabular/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connection and login state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			fmt.Printf("Server:   unreachable (%v)\n", err)
		} else {
			fmt.Println("Server:   ok")
		}

		if app.IsAuthenticated() {
			fmt.Println("Session:  token saved")
		} else {
			fmt.Println("Session:  not logged in")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(vocab.VocabCmd)
	vocab.VocabCmd.AddCommand(vocab.AddCmd)
	vocab.VocabCmd.AddCommand(vocab.ListCmd)

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(statusCmd)
}
