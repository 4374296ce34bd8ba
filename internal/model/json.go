package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
)

// Fields holds object members kept as raw JSON: keys the model does not
// know, and known keys whose value does not fit the field type. They are
// written back unchanged on encode.
type Fields map[string]json.RawMessage

func (f Fields) clone() Fields {
	if f == nil {
		return nil
	}
	c := make(Fields, len(f))
	for k, v := range f {
		c[k] = v
	}
	return c
}

var errNotObject = errors.New("not a JSON object")

// objectReader hands out the members of one JSON object. Members that are
// not claimed, or that fail to decode, end up in rest.
type objectReader struct {
	members map[string]json.RawMessage
	kept    Fields
}

func readObject(data []byte) (*objectReader, bool) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return nil, false
	}
	return &objectReader{members: m}, true
}

// take decodes member key into dst. A null or mistyped value leaves dst
// alone and is kept raw.
func take[T any](r *objectReader, key string, dst *T) {
	raw, ok := r.members[key]
	if !ok {
		return
	}
	delete(r.members, key)

	var v T
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &v) != nil {
		r.keep(key, raw)
		return
	}
	*dst = v
}

func (r *objectReader) keep(key string, raw json.RawMessage) {
	if r.kept == nil {
		r.kept = make(Fields)
	}
	r.kept[key] = raw
}

func (r *objectReader) rest() Fields {
	for k, v := range r.members {
		r.keep(k, v)
	}
	return r.kept
}

// objectWriter builds a JSON object with known members first, in call
// order, followed by the kept members sorted by key. A kept member wins
// over the typed value of the same name.
type objectWriter struct {
	buf     bytes.Buffer
	kept    Fields
	written map[string]bool
	err     error
}

func newObjectWriter(kept Fields) *objectWriter {
	w := &objectWriter{kept: kept, written: make(map[string]bool)}
	w.buf.WriteByte('{')
	return w
}

func (w *objectWriter) field(key string, v any) {
	w.optional(key, v, true)
}

// optional writes the member only when present, or when a raw value was
// kept for it.
func (w *objectWriter) optional(key string, v any, present bool) {
	if w.err != nil {
		return
	}
	w.written[key] = true
	if raw, ok := w.kept[key]; ok {
		w.member(key, raw)
		return
	}
	if !present {
		return
	}
	data, err := marshal(v)
	if err != nil {
		w.err = err
		return
	}
	w.member(key, data)
}

func (w *objectWriter) member(key string, value []byte) {
	name, err := marshal(key)
	if err != nil {
		w.err = err
		return
	}
	if w.buf.Len() > 1 {
		w.buf.WriteByte(',')
	}
	w.buf.Write(name)
	w.buf.WriteByte(':')
	w.buf.Write(value)
}

func (w *objectWriter) finish() ([]byte, error) {
	keys := make([]string, 0, len(w.kept))
	for k := range w.kept {
		if !w.written[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.member(k, w.kept[k])
	}
	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON never fails. A non-object value is kept whole and written
// back as-is.
func (a *Account) UnmarshalJSON(data []byte) error {
	r, ok := readObject(data)
	if !ok {
		*a = Account{Opaque: append(json.RawMessage(nil), data...)}
		return nil
	}
	var acct Account
	take(r, "id", &acct.ID)
	take(r, "name", &acct.Name)
	take(r, "currency", &acct.Currency)
	take(r, "balance", &acct.Balance)
	acct.Extra = r.rest()
	*a = acct
	return nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	if a.Opaque != nil {
		return a.Opaque, nil
	}
	w := newObjectWriter(a.Extra)
	w.field("id", a.ID)
	w.field("name", a.Name)
	w.field("currency", a.Currency)
	w.field("balance", a.Balance)
	return w.finish()
}

// UnmarshalJSON never fails. A non-object value is kept whole and written
// back as-is.
func (e *ActivityEntry) UnmarshalJSON(data []byte) error {
	r, ok := readObject(data)
	if !ok {
		*e = ActivityEntry{Opaque: append(json.RawMessage(nil), data...)}
		return nil
	}
	var entry ActivityEntry
	take(r, "id", &entry.ID)
	take(r, "ts", &entry.TS)
	take(r, "type", &entry.Type)
	take(r, "title", &entry.Title)
	take(r, "details", &entry.Details)
	take(r, "amount", &entry.Amount)
	take(r, "currency", &entry.Currency)
	take(r, "ref", &entry.Ref)
	entry.Extra = r.rest()
	*e = entry
	return nil
}

func (e ActivityEntry) MarshalJSON() ([]byte, error) {
	if e.Opaque != nil {
		return e.Opaque, nil
	}
	w := newObjectWriter(e.Extra)
	w.field("id", e.ID)
	w.field("ts", e.TS)
	w.field("type", e.Type)
	w.field("title", e.Title)
	w.field("details", e.Details)
	w.optional("amount", e.Amount, e.Amount != nil)
	w.optional("currency", e.Currency, e.Currency != "")
	w.optional("ref", e.Ref, e.Ref != "")
	return w.finish()
}

func (m *Meta) UnmarshalJSON(data []byte) error {
	r, ok := readObject(data)
	if !ok {
		return errNotObject
	}
	var meta Meta
	take(r, "app", &meta.App)
	take(r, "demo", &meta.Demo)
	take(r, "createdAt", &meta.CreatedAt)
	meta.Extra = r.rest()
	*m = meta
	return nil
}

func (m Meta) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(m.Extra)
	w.field("app", m.App)
	w.field("demo", m.Demo)
	w.field("createdAt", m.CreatedAt)
	return w.finish()
}

// UnmarshalJSON fails only when data is not an object. Top-level members of
// the wrong type are kept raw, so the lists may come back nil.
func (s *State) UnmarshalJSON(data []byte) error {
	r, ok := readObject(data)
	if !ok {
		return errNotObject
	}
	var st State
	take(r, "meta", &st.Meta)
	take(r, "accounts", &st.Accounts)
	take(r, "activity", &st.Activity)
	take(r, "settings", &st.Settings)
	st.Extra = r.rest()
	*s = st
	return nil
}

func (s State) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(s.Extra)
	w.field("meta", s.Meta)
	w.field("accounts", s.Accounts)
	w.field("activity", s.Activity)
	w.field("settings", s.Settings)
	return w.finish()
}
