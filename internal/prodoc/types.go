package prodoc

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Color mirrors rv.data.Color.
type Color struct {
	Red, Green, Blue, Alpha float32
}

// Point mirrors rv.data.Graphics.Point.
type Point struct {
	X, Y float64
}

// Size mirrors rv.data.Graphics.Size.
type Size struct {
	Width, Height float64
}

// Rect mirrors rv.data.Graphics.Rect.
type Rect struct {
	Origin Point
	Size   Size
}

// Version mirrors rv.data.Version.
type Version struct {
	Major, Minor, Patch uint64
	Build               string
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Build != "" {
		s += " (" + v.Build + ")"
	}
	return s
}

// EncodeUUID builds an rv.data.UUID message.
func EncodeUUID(id string) Message {
	return Message{}.SetString(UUIDString, id)
}

// DecodeUUID reads the string held in an rv.data.UUID field of m.
func DecodeUUID(m Message, num protowire.Number) string {
	sub, ok, err := m.Message(num)
	if !ok || err != nil {
		return ""
	}
	return sub.String(UUIDString)
}

// EncodeColor builds an rv.data.Color message. All four channels are written
// so a black, fully transparent color still has presence.
func EncodeColor(c Color) Message {
	var m Message
	m = m.Append(
		Fixed32Field(ColorRed, math.Float32bits(c.Red)),
		Fixed32Field(ColorGreen, math.Float32bits(c.Green)),
		Fixed32Field(ColorBlue, math.Float32bits(c.Blue)),
		Fixed32Field(ColorAlpha, math.Float32bits(c.Alpha)),
	)
	return m
}

// DecodeColor reads an rv.data.Color message.
func DecodeColor(m Message) Color {
	r, _ := m.Float32(ColorRed)
	g, _ := m.Float32(ColorGreen)
	b, _ := m.Float32(ColorBlue)
	a, _ := m.Float32(ColorAlpha)
	return Color{Red: r, Green: g, Blue: b, Alpha: a}
}

// EncodeSize builds an rv.data.Graphics.Size message.
func EncodeSize(s Size) Message {
	return Message{}.SetFloat64(SizeWidth, s.Width).SetFloat64(SizeHeight, s.Height)
}

// DecodeSize reads an rv.data.Graphics.Size message.
func DecodeSize(m Message) Size {
	w, _ := m.Float64(SizeWidth)
	h, _ := m.Float64(SizeHeight)
	return Size{Width: w, Height: h}
}

// EncodeRect builds an rv.data.Graphics.Rect message.
func EncodeRect(r Rect) Message {
	origin := Message{}.SetFloat64(PointX, r.Origin.X).SetFloat64(PointY, r.Origin.Y)
	return Message{}.
		SetMessage(RectOrigin, origin).
		SetMessage(RectSize, EncodeSize(r.Size))
}

// DecodeRect reads an rv.data.Graphics.Rect message.
func DecodeRect(m Message) (Rect, error) {
	var r Rect
	origin, _, err := m.Message(RectOrigin)
	if err != nil {
		return Rect{}, err
	}
	r.Origin.X, _ = origin.Float64(PointX)
	r.Origin.Y, _ = origin.Float64(PointY)
	size, _, err := m.Message(RectSize)
	if err != nil {
		return Rect{}, err
	}
	r.Size = DecodeSize(size)
	return r, nil
}

// DecodeVersion reads an rv.data.Version message.
func DecodeVersion(m Message) Version {
	major, _ := m.Varint(VersionMajor)
	minor, _ := m.Varint(VersionMinor)
	patch, _ := m.Varint(VersionPatch)
	return Version{Major: major, Minor: minor, Patch: patch, Build: m.String(VersionBuild)}
}

// EncodeVersion builds an rv.data.Version message.
func EncodeVersion(v Version) Message {
	return Message{}.
		SetVarint(VersionMajor, v.Major).
		SetVarint(VersionMinor, v.Minor).
		SetVarint(VersionPatch, v.Patch).
		SetString(VersionBuild, v.Build)
}
