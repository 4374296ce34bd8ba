// Package document converts wallet state to and from its portable JSON form.
// The same bytes are used for the persisted copy and for exports.
package document

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/walletbox/walletbox/internal/model"
)

// ErrInvalid marks a document that cannot become wallet state: it does not
// parse, or it lacks the accounts/activity lists.
var ErrInvalid = errors.New("invalid wallet document")

// MaxSize bounds how much ReadPortable will read.
const MaxSize = 64 << 20

// Encode serializes st as indented JSON. Nil lists and settings are written
// as empty values so the result always passes Decode.
func Encode(st *model.State) ([]byte, error) {
	if st == nil {
		return nil, errors.New("encoding nil state")
	}
	doc := *st
	if doc.Accounts == nil {
		doc.Accounts = []model.Account{}
	}
	if doc.Activity == nil {
		doc.Activity = []model.ActivityEntry{}
	}
	if doc.Settings == nil {
		doc.Settings = model.Settings{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses data into a State. The only structural requirement is that
// the document is a non-null object whose accounts and activity are lists.
// Entries are not validated: values that do not fit the model, and keys it
// does not know, are kept and come back out of Encode unchanged.
func Decode(data []byte) (*model.State, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: document is null", ErrInvalid)
	}
	for _, field := range []string{"accounts", "activity"} {
		if !isList(top[field]) {
			return nil, fmt.Errorf("%w: %s is not a list", ErrInvalid, field)
		}
	}

	var st model.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return &st, nil
}

func isList(raw json.RawMessage) bool {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	return len(raw) > 0 && raw[0] == '['
}

// ReadPortable reads a document supplied by the user, transparently
// decompressing gzip input.
func ReadPortable(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(io.LimitReader(r, MaxSize+1))

	var src io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer zr.Close()
		src = io.LimitReader(zr, MaxSize+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("document larger than %d bytes", MaxSize)
	}
	return data, nil
}

// WriteGzip writes data to w as a gzip stream.
func WriteGzip(w io.Writer, data []byte) error {
	zw := gzip.NewWriter(w)
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return fmt.Errorf("compressing document: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing document: %w", err)
	}
	return nil
}
