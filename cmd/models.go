package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spigell/cv-analyzer/internal/nlp"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the available linguistic models",
	Run: func(cmd *cobra.Command, _ []string) {
		printModels(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func printModels(w io.Writer) {
	for _, name := range nlp.Available() {
		marker := " "
		if name == nlp.DefaultModel {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
}
