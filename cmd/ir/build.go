package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/irsearch/internal/cache"
	"github.com/conduit-lang/irsearch/internal/config"
	"github.com/conduit-lang/irsearch/internal/dataset"
	"github.com/conduit-lang/irsearch/internal/lexer"
	"github.com/conduit-lang/irsearch/internal/logging"
	"github.com/conduit-lang/irsearch/internal/pipeline/defaults"
)

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build or inspect the positional index",
	}
	cmd.AddCommand(newIndexBuildCmd())
	cmd.AddCommand(newIndexStatsCmd())
	return cmd
}

func loadDatasetFromConfig(cfgFile string) (*dataset.Dataset, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(false)
	if err != nil {
		return nil, nil, err
	}
	defer log.Sync()

	parser, err := dataset.ParserFor(cfg.Dataset)
	if err != nil {
		return nil, nil, err
	}

	pl, err := defaults.Pipeline(cfg.StopwordsPath)
	if err != nil {
		return nil, nil, err
	}

	store := cache.NewFileStore(cfg.CachePath)
	ds, err := dataset.Load(dataset.Options{
		JSONPath:  cfg.JSONPath,
		Store:     store,
		CacheKey:  cfg.Dataset,
		Parser:    parser,
		Tokenizer: lexer.NewRegex(),
		Pipeline:  pl,
		Tag:       cfg.Dataset,
		Logger:    log,
	})
	return ds, cfg, err
}

func newIndexBuildCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build (or load from cache) the positional index",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := loadDatasetFromConfig(cfgFile)
			if err != nil {
				return err
			}
			return dataset.WriteIndexSummary(ds.Index, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "path to ir.yaml")
	return cmd
}

func newIndexStatsCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print index and vocabulary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := loadDatasetFromConfig(cfgFile)
			if err != nil {
				return err
			}
			if err := dataset.WriteIndexSummary(ds.Index, os.Stdout); err != nil {
				return err
			}
			return dataset.WriteVocabulary(ds.Index, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "path to ir.yaml")
	return cmd
}
