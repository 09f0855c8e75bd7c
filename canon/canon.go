// Package canon implements canonical binary encoding of chain records.
//
// Records encode to the protobuf wire format: fields appear in ascending
// field-number order, and a scalar field holding its zero value is omitted
// entirely. Two records are the same record if and only if their canonical
// encodings are byte-identical, so the zero-omission rule lives here, in
// the Encoder, rather than in per-record conditionals.
//
// Encoding is total: any well-typed record has an encoding, and there is
// no error path.
package canon

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is a record with a canonical wire schema. EncodeFields must
// append the record's fields in ascending field-number order and must not
// depend on any iteration order other than the record's own sequences.
type Message interface {
	EncodeFields(e *Encoder)
}

// Marshal returns the canonical encoding of m. A nil message encodes to
// zero bytes.
func Marshal(m Message) []byte {
	if m == nil {
		return []byte{}
	}
	e := Encoder{buf: make([]byte, 0, 128)}
	m.EncodeFields(&e)
	return e.buf
}

// Encoder accumulates the wire encoding of a single record. The scalar
// methods omit zero values; absence of an embedded record is expressed by
// the record pointer being nil at the call site, matching wire-format
// message presence.
type Encoder struct {
	buf []byte
}

// Int64 appends a varint field, omitting zero. Negative values encode as
// their two's-complement, the same as the reference wire format.
func (e *Encoder) Int64(num protowire.Number, v int64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, uint64(v))
}

// Int32 appends a varint field, omitting zero. Enum fields use this.
func (e *Encoder) Int32(num protowire.Number, v int32) {
	e.Int64(num, int64(v))
}

// Uint64 appends a varint field, omitting zero.
func (e *Encoder) Uint64(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

// Bool appends a varint field, omitting false.
func (e *Encoder) Bool(num protowire.Number, v bool) {
	if !v {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, 1)
}

// Bytes appends a length-delimited field, omitting empty slices.
func (e *Encoder) Bytes(num protowire.Number, b []byte) {
	if len(b) == 0 {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, b)
}

// String appends a length-delimited field, omitting empty strings.
func (e *Encoder) String(num protowire.Number, s string) {
	if s == "" {
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, s)
}

// BytesElement appends one element of a repeated bytes field. Repeated
// elements are always emitted, even when empty: an empty element and an
// absent element are different sequences.
func (e *Encoder) BytesElement(num protowire.Number, b []byte) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, b)
}

// Embedded appends a length-delimited sub-record. The caller decides
// presence: a present record is emitted even when its own encoding is
// empty, an absent record is simply not passed here.
func (e *Encoder) Embedded(num protowire.Number, m Message) {
	e.BytesElement(num, Marshal(m))
}
