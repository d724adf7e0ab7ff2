package dataset

import (
	"encoding/json"

	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/ierrors"
)

// Record is a single raw JSON document as parsed from the input array
// before a Parser maps it to title/text.
type Record map[string]json.RawMessage

// Parser maps one decoded JSON record to a title/text pair. Missing
// strings are replaced by empty strings; nulls are tolerated
// (spec.md §6).
type Parser interface {
	Parse(record Record) (title, text string, err error)
}

func stringField(record Record, key string) string {
	raw, ok := record[key]
	if !ok || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// ZHParser reads the "zh" dataset shape: Prodavane_predmety (title),
// Popisek (text).
type ZHParser struct{}

func (ZHParser) Parse(record Record) (string, string, error) {
	title := stringField(record, "Prodavane_predmety")
	text := stringField(record, "Popisek")
	return title, text, nil
}

// CWParser reads the "cw" dataset shape: title, text, id. The id field
// is accepted but not used — doc_id is always allocated by the
// index's own counter (spec.md §4.4).
type CWParser struct{}

func (CWParser) Parse(record Record) (string, string, error) {
	title := stringField(record, "title")
	text := stringField(record, "text")
	return title, text, nil
}

// ParserFor resolves a CLI-facing dataset name ("zh"/"cw") to a
// Parser, or a ConfigError for anything else.
func ParserFor(name string) (Parser, error) {
	switch name {
	case "zh":
		return ZHParser{}, nil
	case "cw":
		return CWParser{}, nil
	default:
		return nil, ierrors.ConfigError("unknown dataset parser: " + name)
	}
}

// DecodeRecords unmarshals a JSON array of objects into Records,
// reporting an InputShapeError on malformed JSON.
func DecodeRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, ierrors.Wrap(ierrors.InputShape, "decode dataset JSON", err)
	}
	return records, nil
}

// ParseAll maps every record through parser into a Document via the
// index's id allocator/counter.
func ParseAll(records []Record, parser Parser, counter *document.Counter) ([]*document.Document, error) {
	docs := make([]*document.Document, 0, len(records))
	for _, record := range records {
		title, text, err := parser.Parse(record)
		if err != nil {
			return nil, ierrors.Wrap(ierrors.InputShape, "parse dataset record", err)
		}
		docs = append(docs, document.New(counter, title, text))
	}
	return docs, nil
}
