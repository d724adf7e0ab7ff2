// Package dataset implements the build-or-load index lifecycle of
// spec.md §4.10: parse JSON, lemmatise/tokenise/preprocess, build a
// positional index, and cache it.
package dataset

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/conduit-lang/irsearch/internal/cache"
	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/index"
	"github.com/conduit-lang/irsearch/internal/lemma"
	"github.com/conduit-lang/irsearch/internal/lexer"
	"github.com/conduit-lang/irsearch/internal/pipeline"
)

// Dataset owns the built-or-loaded index. GenerationID is a fresh UUID
// assigned by every Load, on the build path and the cache path alike;
// it is not written to the cache, so it does not tell a freshly built
// index apart from one loaded from cache.
type Dataset struct {
	Index        *index.Index
	GenerationID string
	Tag          string

	log *zap.Logger
}

// Options configures a Dataset build.
type Options struct {
	// JSONPath is the dataset's source JSON array file.
	JSONPath string
	// Store is the cache backend to check before rebuilding and to
	// persist into after a fresh build.
	Store cache.Store
	// CacheKey identifies this dataset's entry within Store.
	CacheKey   string
	Parser     Parser
	Tokenizer  lexer.Tokenizer
	Pipeline   *pipeline.Pipeline
	Lemmatiser lemma.Lemmatiser
	Tag        string
	Logger     *zap.Logger
	// Workers bounds the ingestion worker pool; 0 selects a sane
	// default.
	Workers int
}

// Load builds-or-loads a Dataset per opts, matching spec.md §4.10:
// if the cache entry exists, decode it and set the document counter
// to max_doc_id+1; otherwise parse JSON with the supplied parser, run
// lemmatise->tokenise->preprocess->build, and write the cache.
func Load(opts Options) (*Dataset, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = lexer.NewRegex()
	}
	if opts.Pipeline == nil {
		opts.Pipeline = pipeline.New()
	}
	if opts.Lemmatiser == nil {
		opts.Lemmatiser = lemma.NoOp{}
	}

	if opts.Store != nil {
		idx, ok, err := opts.Store.Load(opts.CacheKey)
		if err != nil {
			log.Warn("cache load failed, rebuilding", zap.Error(err))
		} else if ok {
			log.Info("loaded index from cache",
				zap.String("tag", opts.Tag),
				zap.Int("documents", idx.DocumentsCount()))
			return &Dataset{Index: idx, GenerationID: uuid.NewString(), Tag: opts.Tag, log: log}, nil
		}
	}

	return build(opts, log)
}

func build(opts Options, log *zap.Logger) (*Dataset, error) {
	data, err := os.ReadFile(opts.JSONPath)
	if err != nil {
		return nil, err
	}
	records, err := DecodeRecords(data)
	if err != nil {
		return nil, err
	}

	idx := index.New()
	docs, err := ParseAll(records, opts.Parser, idx.Counter())
	if err != nil {
		return nil, err
	}
	log.Info("loaded documents from json", zap.Int("count", len(docs)))

	if err := bulkLemmatise(opts.Lemmatiser, docs); err != nil {
		return nil, err
	}
	if err := bulkTokenizeAndPreprocess(docs, opts.Tokenizer, opts.Pipeline, opts.Workers); err != nil {
		return nil, err
	}

	// Index build itself stays single-threaded (spec.md §5): it folds
	// the already-processed documents in id order so postings land in
	// deterministic, append-only fashion.
	for _, doc := range docs {
		idx.AddDocument(doc)
	}

	genID := uuid.NewString()
	log.Info("built index",
		zap.String("generation_id", genID),
		zap.Int("documents", idx.DocumentsCount()),
		zap.Int("vocabulary", len(idx.UniqueTerms())))

	if opts.Store != nil {
		if err := opts.Store.Save(opts.CacheKey, idx); err != nil {
			log.Warn("failed to persist index cache", zap.Error(err))
		}
	}

	return &Dataset{Index: idx, GenerationID: genID, Tag: opts.Tag, log: log}, nil
}

// bulkLemmatise rewrites every document's text in place via the
// lemmatiser's batch form before tokenisation, mirroring the reference
// Dataset.create_index's bulk_lemmatize step.
func bulkLemmatise(l lemma.Lemmatiser, docs []*document.Document) error {
	if _, ok := l.(lemma.NoOp); ok {
		return nil
	}
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	lemmatised, err := l.BulkLemmatise(texts)
	if err != nil {
		return err
	}
	for i, d := range docs {
		d.Text = lemmatised[i]
	}
	return nil
}

// bulkTokenizeAndPreprocess fans document tokenisation+preprocessing
// out across a bounded worker pool. Each document is processed
// independently (no shared mutable state), so this is safe even
// though index build itself stays single-threaded.
func bulkTokenizeAndPreprocess(docs []*document.Document, tz lexer.Tokenizer, pl *pipeline.Pipeline, workers int) error {
	if workers <= 0 {
		workers = 8
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			doc.Tokenize(tz)
			doc.Preprocess(pl)
			return nil
		})
	}
	return g.Wait()
}
