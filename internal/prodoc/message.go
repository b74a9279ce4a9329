package prodoc

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field is one encoded field exactly as it appeared on the wire.
type Field struct {
	Num  protowire.Number
	Type protowire.Type
	// Raw holds the tag and value bytes.
	Raw []byte
	// value holds the value bytes without the tag. For length-delimited
	// fields it still includes the length prefix.
	value []byte
}

// Payload returns the contents of a length-delimited field.
func (f Field) Payload() ([]byte, bool) {
	if f.Type != protowire.BytesType {
		return nil, false
	}
	v, n := protowire.ConsumeBytes(f.value)
	if n < 0 {
		return nil, false
	}
	return v, true
}

// Message is a decoded protobuf message that keeps every field in wire order.
// Unknown fields survive a decode/encode cycle unchanged. A Message is a value:
// mutators return a new Message and never write into the receiver's buffers.
type Message struct {
	fields []Field
}

// Unmarshal splits b into fields. Nested messages are decoded lazily.
func Unmarshal(b []byte) (Message, error) {
	var fields []Field
	for offset := 0; offset < len(b); {
		num, typ, n := protowire.ConsumeTag(b[offset:])
		if n < 0 {
			return Message{}, fmt.Errorf("decode tag at offset %d: %w", offset, protowire.ParseError(n))
		}
		m := protowire.ConsumeFieldValue(num, typ, b[offset+n:])
		if m < 0 {
			return Message{}, fmt.Errorf("decode field %d at offset %d: %w", num, offset, protowire.ParseError(m))
		}
		end := offset + n + m
		fields = append(fields, Field{
			Num:   num,
			Type:  typ,
			Raw:   b[offset:end:end],
			value: b[offset+n : end : end],
		})
		offset = end
	}
	return Message{fields: fields}, nil
}

// Marshal concatenates the fields in order.
func (m Message) Marshal() []byte {
	size := 0
	for _, f := range m.fields {
		size += len(f.Raw)
	}
	out := make([]byte, 0, size)
	for _, f := range m.fields {
		out = append(out, f.Raw...)
	}
	return out
}

// Fields returns a copy of the field list.
func (m Message) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Len reports the number of encoded fields.
func (m Message) Len() int {
	return len(m.fields)
}

// Has reports whether num occurs at least once.
func (m Message) Has(num protowire.Number) bool {
	_, ok := m.last(num)
	return ok
}

// last returns the final occurrence of num; for scalars the last value wins.
func (m Message) last(num protowire.Number) (Field, bool) {
	for i := len(m.fields) - 1; i >= 0; i-- {
		if m.fields[i].Num == num {
			return m.fields[i], true
		}
	}
	return Field{}, false
}

// Bytes returns the payload of the last length-delimited field num.
func (m Message) Bytes(num protowire.Number) ([]byte, bool) {
	f, ok := m.last(num)
	if !ok {
		return nil, false
	}
	return f.Payload()
}

// String returns field num as a string, or "" when absent.
func (m Message) String(num protowire.Number) string {
	b, _ := m.Bytes(num)
	return string(b)
}

// Message decodes the nested message stored in field num.
func (m Message) Message(num protowire.Number) (Message, bool, error) {
	b, ok := m.Bytes(num)
	if !ok {
		return Message{}, false, nil
	}
	sub, err := Unmarshal(b)
	if err != nil {
		return Message{}, true, fmt.Errorf("field %d: %w", num, err)
	}
	return sub, true, nil
}

// Messages decodes every occurrence of the repeated message field num.
func (m Message) Messages(num protowire.Number) ([]Message, error) {
	var out []Message
	for _, f := range m.fields {
		if f.Num != num {
			continue
		}
		b, ok := f.Payload()
		if !ok {
			return nil, fmt.Errorf("field %d: not length-delimited", num)
		}
		sub, err := Unmarshal(b)
		if err != nil {
			return nil, fmt.Errorf("field %d[%d]: %w", num, len(out), err)
		}
		out = append(out, sub)
	}
	return out, nil
}

// Varint returns the last varint value of field num.
func (m Message) Varint(num protowire.Number) (uint64, bool) {
	f, ok := m.last(num)
	if !ok || f.Type != protowire.VarintType {
		return 0, false
	}
	v, n := protowire.ConsumeVarint(f.value)
	if n < 0 {
		return 0, false
	}
	return v, true
}

// Bool returns field num as a bool; absent fields are false.
func (m Message) Bool(num protowire.Number) bool {
	v, _ := m.Varint(num)
	return protowire.DecodeBool(v)
}

// Float32 returns the float field num.
func (m Message) Float32(num protowire.Number) (float32, bool) {
	f, ok := m.last(num)
	if !ok || f.Type != protowire.Fixed32Type {
		return 0, false
	}
	v, n := protowire.ConsumeFixed32(f.value)
	if n < 0 {
		return 0, false
	}
	return math.Float32frombits(v), true
}

// Float64 returns the double field num.
func (m Message) Float64(num protowire.Number) (float64, bool) {
	f, ok := m.last(num)
	if !ok || f.Type != protowire.Fixed64Type {
		return 0, false
	}
	v, n := protowire.ConsumeFixed64(f.value)
	if n < 0 {
		return 0, false
	}
	return math.Float64frombits(v), true
}

// Remove drops every occurrence of the given fields.
func (m Message) Remove(nums ...protowire.Number) Message {
	out := make([]Field, 0, len(m.fields))
	for _, f := range m.fields {
		if containsNumber(nums, f.Num) {
			continue
		}
		out = append(out, f)
	}
	return Message{fields: out}
}

// Set replaces every occurrence of f.Num with f, keeping the position of the
// first occurrence. Absent fields are inserted in field-number order.
func (m Message) Set(f Field) Message {
	out := make([]Field, 0, len(m.fields)+1)
	placed := false
	for _, existing := range m.fields {
		if existing.Num == f.Num {
			if !placed {
				out = append(out, f)
				placed = true
			}
			continue
		}
		if !placed && existing.Num > f.Num {
			out = append(out, f)
			placed = true
		}
		out = append(out, existing)
	}
	if !placed {
		out = append(out, f)
	}
	return Message{fields: out}
}

// Append adds fields after the existing ones, for repeated values.
func (m Message) Append(fields ...Field) Message {
	out := make([]Field, 0, len(m.fields)+len(fields))
	out = append(out, m.fields...)
	out = append(out, fields...)
	return Message{fields: out}
}

// SetString stores s, or drops the field when s is empty.
func (m Message) SetString(num protowire.Number, s string) Message {
	if s == "" {
		return m.Remove(num)
	}
	return m.Set(BytesField(num, []byte(s)))
}

// SetBytes stores b as a length-delimited field.
func (m Message) SetBytes(num protowire.Number, b []byte) Message {
	return m.Set(BytesField(num, b))
}

// SetMessage stores sub as a nested message.
func (m Message) SetMessage(num protowire.Number, sub Message) Message {
	return m.Set(MessageField(num, sub))
}

// SetVarint stores v, or drops the field when v is zero (proto3 default).
func (m Message) SetVarint(num protowire.Number, v uint64) Message {
	if v == 0 {
		return m.Remove(num)
	}
	return m.Set(VarintField(num, v))
}

// SetBool stores v, or drops the field when false.
func (m Message) SetBool(num protowire.Number, v bool) Message {
	return m.SetVarint(num, protowire.EncodeBool(v))
}

// SetFloat32 stores v as a fixed32 float, or drops the field when zero.
func (m Message) SetFloat32(num protowire.Number, v float32) Message {
	if v == 0 {
		return m.Remove(num)
	}
	return m.Set(Fixed32Field(num, math.Float32bits(v)))
}

// SetFloat64 stores v as a fixed64 double, or drops the field when zero.
func (m Message) SetFloat64(num protowire.Number, v float64) Message {
	if v == 0 {
		return m.Remove(num)
	}
	return m.Set(Fixed64Field(num, math.Float64bits(v)))
}

// BytesField encodes a length-delimited field.
func BytesField(num protowire.Number, b []byte) Field {
	raw := protowire.AppendTag(nil, num, protowire.BytesType)
	tagLen := len(raw)
	raw = protowire.AppendBytes(raw, b)
	return Field{Num: num, Type: protowire.BytesType, Raw: raw, value: raw[tagLen:]}
}

// MessageField encodes sub as a nested message field.
func MessageField(num protowire.Number, sub Message) Field {
	return BytesField(num, sub.Marshal())
}

// VarintField encodes a varint field.
func VarintField(num protowire.Number, v uint64) Field {
	raw := protowire.AppendTag(nil, num, protowire.VarintType)
	tagLen := len(raw)
	raw = protowire.AppendVarint(raw, v)
	return Field{Num: num, Type: protowire.VarintType, Raw: raw, value: raw[tagLen:]}
}

// Fixed32Field encodes a fixed32 field.
func Fixed32Field(num protowire.Number, v uint32) Field {
	raw := protowire.AppendTag(nil, num, protowire.Fixed32Type)
	tagLen := len(raw)
	raw = protowire.AppendFixed32(raw, v)
	return Field{Num: num, Type: protowire.Fixed32Type, Raw: raw, value: raw[tagLen:]}
}

// Fixed64Field encodes a fixed64 field.
func Fixed64Field(num protowire.Number, v uint64) Field {
	raw := protowire.AppendTag(nil, num, protowire.Fixed64Type)
	tagLen := len(raw)
	raw = protowire.AppendFixed64(raw, v)
	return Field{Num: num, Type: protowire.Fixed64Type, Raw: raw, value: raw[tagLen:]}
}

func containsNumber(nums []protowire.Number, n protowire.Number) bool {
	for _, candidate := range nums {
		if candidate == n {
			return true
		}
	}
	return false
}
