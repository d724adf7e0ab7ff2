package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/irsearch/internal/lexer"
	"github.com/conduit-lang/irsearch/internal/pipeline/defaults"
	"github.com/conduit-lang/irsearch/pkg/irsearch"
)

// engineName resolves the Collection key for a Config's engine/method
// pair: the Boolean engine is named directly, tfidf selects by method.
func engineName(cfgEngine, cfgMethod string) (string, error) {
	switch cfgEngine {
	case "boolean":
		return "boolean", nil
	case "tfidf":
		return cfgMethod, nil
	default:
		return "", fmt.Errorf("engine %q has no registered search engine", cfgEngine)
	}
}

func newSearchCmd() *cobra.Command {
	var cfgFile, query string
	var topK int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a query against the built index",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, cfg, err := loadDatasetFromConfig(cfgFile)
			if err != nil {
				return err
			}
			if query == "" && len(args) > 0 {
				query = args[0]
			}
			if topK <= 0 {
				topK = cfg.TopK
			}

			pl, err := defaults.Pipeline(cfg.StopwordsPath)
			if err != nil {
				return err
			}
			collection := irsearch.NewCollection(ds.Index, lexer.NewRegex(), pl, nil)

			name, err := engineName(cfg.Engine, cfg.Method)
			if err != nil {
				return err
			}
			engine, err := collection.Engine(name)
			if err != nil {
				return err
			}

			results, err := engine.Search(query, topK)
			if err != nil {
				return err
			}
			return printResults(results)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "path to ir.yaml")
	cmd.Flags().StringVar(&query, "query", "", "query text (or pass as a positional argument)")
	cmd.Flags().IntVar(&topK, "k", 0, "number of results to return (defaults to the config's top_k)")
	return cmd
}

func printResults(docs []*irsearch.Document) error {
	rank := color.New(color.FgHiBlack)
	title := color.New(color.FgCyan, color.Bold)

	if len(docs) == 0 {
		fmt.Fprintln(os.Stdout, "no matches")
		return nil
	}
	for i, doc := range docs {
		rank.Fprintf(os.Stdout, "%3d. ", i+1)
		title.Fprintf(os.Stdout, "[doc %d] ", doc.DocID)
		fmt.Fprintln(os.Stdout, doc.Title)
	}
	return nil
}
