package index

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/ierrors"
	"github.com/conduit-lang/irsearch/internal/token"
)

// magic identifies the binary cache format; version allows the layout
// to evolve without guessing at older files.
const (
	magic   uint32 = 0x49525058 // "IRPX"
	version uint32 = 1
)

// Encode writes idx as a tagged, length-prefixed binary blob. The
// layout is: magic, version, doc count, then per document (id, title,
// text, token count, tokens{processed_form, position, length, kind}).
// Postings are not written separately — they are fully recoverable by
// replaying AddDocument over the decoded documents, which also
// guarantees the round trip preserves every invariant in spec.md §3.
func Encode(idx *Index, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := writeUint32(bw, magic); err != nil {
		return ierrors.CacheIOError("write magic", err)
	}
	if err := writeUint32(bw, version); err != nil {
		return ierrors.CacheIOError("write version", err)
	}

	ids := make([]int64, 0, len(idx.documents))
	for id := range idx.documents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if err := writeUint64(bw, uint64(len(ids))); err != nil {
		return ierrors.CacheIOError("write doc count", err)
	}
	for _, id := range ids {
		doc := idx.documents[id]
		if err := encodeDocument(bw, doc); err != nil {
			return ierrors.CacheIOError(fmt.Sprintf("encode document %d", id), err)
		}
	}
	return bw.Flush()
}

func encodeDocument(w *bufio.Writer, doc *document.Document) error {
	if err := writeUint64(w, uint64(doc.DocID)); err != nil {
		return err
	}
	if err := writeString(w, doc.Title); err != nil {
		return err
	}
	if err := writeString(w, doc.Text); err != nil {
		return err
	}
	if err := writeUint64(w, uint64(len(doc.Tokens))); err != nil {
		return err
	}
	for _, tok := range doc.Tokens {
		if err := writeString(w, tok.ProcessedForm); err != nil {
			return err
		}
		if err := writeUint64(w, uint64(tok.Position)); err != nil {
			return err
		}
		if err := writeUint64(w, uint64(tok.Length)); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(tok.Kind)); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a blob written by Encode and rebuilds a fully usable
// Index, including the id allocator positioned past the max decoded
// doc_id (spec.md §4.4).
func Decode(r io.Reader) (*Index, error) {
	br := bufio.NewReader(r)
	m, err := readUint32(br)
	if err != nil {
		return nil, ierrors.CacheIOError("read magic", err)
	}
	if m != magic {
		return nil, ierrors.New(ierrors.Cache, "not an ir-search index cache (bad magic)")
	}
	v, err := readUint32(br)
	if err != nil {
		return nil, ierrors.CacheIOError("read version", err)
	}
	if v != version {
		return nil, ierrors.New(ierrors.Cache, fmt.Sprintf("unsupported cache version %d", v))
	}

	docCount, err := readUint64(br)
	if err != nil {
		return nil, ierrors.CacheIOError("read doc count", err)
	}

	idx := New()
	var maxID int64 = -1
	for i := uint64(0); i < docCount; i++ {
		doc, err := decodeDocument(br)
		if err != nil {
			return nil, ierrors.CacheIOError("decode document", err)
		}
		idx.AddDocument(doc)
		if doc.DocID > maxID {
			maxID = doc.DocID
		}
	}
	idx.counter.SetMin(maxID + 1)
	return idx, nil
}

func decodeDocument(r *bufio.Reader) (*document.Document, error) {
	id, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	title, err := readString(r)
	if err != nil {
		return nil, err
	}
	text, err := readString(r)
	if err != nil {
		return nil, err
	}
	tokCount, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	tokens := make([]token.Token, 0, tokCount)
	for i := uint64(0); i < tokCount; i++ {
		form, err := readString(r)
		if err != nil {
			return nil, err
		}
		position, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		length, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		kind, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token.Token{
			ProcessedForm: form,
			Position:      int(position),
			Length:        int(length),
			Kind:          token.Kind(kind),
		})
	}
	return &document.Document{
		DocID:  int64(id),
		Title:  title,
		Text:   text,
		Tokens: tokens,
	}, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func writeString(w io.Writer, s string) error {
	if err := writeUint64(w, uint64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	n, err := readUint64(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
