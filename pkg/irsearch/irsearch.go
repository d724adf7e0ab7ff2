// Package irsearch is the public facade an embedder (CLI, web
// front-end) imports: the SearchEngine interface of spec.md §6 and
// constructors wiring the ranked/Boolean engines to a built index.
package irsearch

import (
	"github.com/conduit-lang/irsearch/internal/boolean"
	"github.com/conduit-lang/irsearch/internal/dataset"
	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/ierrors"
	"github.com/conduit-lang/irsearch/internal/index"
	"github.com/conduit-lang/irsearch/internal/lemma"
	"github.com/conduit-lang/irsearch/internal/lexer"
	"github.com/conduit-lang/irsearch/internal/pipeline"
	"github.com/conduit-lang/irsearch/internal/ranked"
)

// Document is the result type every SearchEngine returns.
type Document = document.Document

// Index is the positional index type, exposed for embedders that need
// direct access to postings/statistics (e.g. a CLI's `index stats`
// subcommand).
type Index = index.Index

// RankMethod names a ranked search method (spec.md §4.8).
type RankMethod = ranked.Method

const (
	LTCLTC = ranked.LTCLTC
	LTULTC = ranked.LTULTC
)

// SearchEngine is the interface embedders search against: length
// <= k, ranked engines return documents highest score first; ordering
// is implementation-defined for Boolean.
type SearchEngine interface {
	Search(query string, k int) ([]*Document, error)
}

// rankedAdapter pins a ranked.Engine to one Method so it satisfies
// SearchEngine.
type rankedAdapter struct {
	engine *ranked.Engine
	method RankMethod
}

func (r *rankedAdapter) Search(query string, k int) ([]*Document, error) {
	return r.engine.Search(query, k, r.method)
}

// Collection builds and names every engine available over one index,
// generalising the reference implementation's EngineCollection
// (original_source 5/src/model/engine_collection.py) to the engines
// actually in scope here.
type Collection struct {
	idx     *index.Index
	engines map[string]SearchEngine
}

// NewCollection builds a Collection over idx using tz/pl to normalise
// incoming queries and lemmatiser to normalise Boolean TERM literals.
func NewCollection(idx *index.Index, tz lexer.Tokenizer, pl *pipeline.Pipeline, lemmatiser lemma.Lemmatiser) *Collection {
	normalizer := &boolean.Normalizer{Lemmatiser: lemmatiser, Tokenizer: tz, Pipeline: pl}

	engines := map[string]SearchEngine{
		"boolean": boolean.New(idx, normalizer),
		"ltc.ltc": &rankedAdapter{engine: ranked.New(idx, tz, pl), method: ranked.LTCLTC},
		"ltu.ltc": &rankedAdapter{engine: ranked.New(idx, tz, pl), method: ranked.LTULTC},
	}
	return &Collection{idx: idx, engines: engines}
}

// ErrEngineNotRegistered is returned by Engine for a name with no
// backing SearchEngine — e.g. "lsa" or "embeddings", which spec.md §1
// treats as optional sibling engines outside this core's scope.
var ErrEngineNotRegistered = ierrors.ConfigError("engine not registered in this collection")

// Engine resolves a named engine ("boolean", "ltc.ltc", "ltu.ltc").
func (c *Collection) Engine(name string) (SearchEngine, error) {
	eng, ok := c.engines[name]
	if !ok {
		return nil, ErrEngineNotRegistered
	}
	return eng, nil
}

// Index returns the underlying positional index.
func (c *Collection) Index() *index.Index { return c.idx }

// Dataset re-exports the build-or-load lifecycle entry point.
type Dataset = dataset.Dataset

// DatasetOptions re-exports the lifecycle configuration struct.
type DatasetOptions = dataset.Options

// LoadDataset builds-or-loads a Dataset per spec.md §4.10.
func LoadDataset(opts DatasetOptions) (*Dataset, error) {
	return dataset.Load(opts)
}
