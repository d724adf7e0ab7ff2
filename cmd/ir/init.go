package main

import (
	"fmt"
	"os"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type initAnswers struct {
	Dataset  string `survey:"dataset" yaml:"dataset"`
	JSONPath string `survey:"json_path" yaml:"json_path"`
	TopK     int    `survey:"top_k" yaml:"top_k"`
}

func newInitCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively scaffold an ir.yaml config",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions := []*survey.Question{
				{
					Name: "dataset",
					Prompt: &survey.Select{
						Message: "Dataset format:",
						Options: []string{"zh", "cw"},
						Default: "zh",
					},
				},
				{
					Name:     "json_path",
					Prompt:   &survey.Input{Message: "Path to the source JSON array:"},
					Validate: survey.Required,
				},
				{
					Name: "top_k",
					Prompt: &survey.Input{
						Message: "Default top_k:",
						Default: "10",
					},
				},
			}

			var rawAnswers struct {
				Dataset  string
				JSONPath string `survey:"json_path"`
				TopK     string `survey:"top_k"`
			}
			if err := survey.Ask(questions, &rawAnswers); err != nil {
				return err
			}

			answers := initAnswers{Dataset: rawAnswers.Dataset, JSONPath: rawAnswers.JSONPath, TopK: 10}
			fmt.Sscanf(rawAnswers.TopK, "%d", &answers.TopK)

			data, err := yaml.Marshal(answers)
			if err != nil {
				return err
			}
			return os.WriteFile(outPath, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "ir.yaml", "path to write the generated config")
	return cmd
}
