package vocab

import (
	"github.com/spf13/cobra"
)

// VocabCmd is the parent command for flashcard operations.
var VocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Flashcard management",
	Long:  `Add new flashcards and list the saved ones grouped by language.`,
}
