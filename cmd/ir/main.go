// Command ir is the CLI surface over the positional-index IR core:
// build/load a dataset, then run Boolean or ranked searches against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ir",
		Short: "Positional-index IR core CLI",
		Long:  "ir builds a positional inverted index over a JSON document corpus and answers Boolean or ranked TF-IDF queries against it.",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newIndexCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newVersionCmd(version))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
