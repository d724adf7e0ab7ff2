// Package defaults builds the default preprocessing pipeline,
// mirroring the reference implementation's config.py PIPELINE:
// stopwords, lowercase, whitespace-strip, unidecode, in that order.
package defaults

import (
	"os"

	"github.com/conduit-lang/irsearch/internal/pipeline"
)

// Pipeline builds the default pipeline. If stopwordsPath is empty, the
// StopWords stage is omitted.
func Pipeline(stopwordsPath string) (*pipeline.Pipeline, error) {
	transforms := []pipeline.Transform{}

	if stopwordsPath != "" {
		f, err := os.Open(stopwordsPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		stop, err := pipeline.LoadStopWords(f)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, stop)
	}

	transforms = append(transforms,
		pipeline.NewLowercase(),
		pipeline.NewWhitespaceStrip(),
		pipeline.NewUnidecode(),
	)
	return pipeline.New(transforms...), nil
}
