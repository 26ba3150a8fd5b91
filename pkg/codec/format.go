package codec

import (
	"strings"

	"github.com/ypbank/txconv/pkg/record"
)

// Format selects one of the supported on-disk representations. It is the only
// place that knows every codec; adding a format means adding a constant here
// and extending the three switches below.
type Format int

const (
	Binary Format = iota
	CSV
	Text
)

// ParseFormat maps a case-insensitive format name to a Format. An
// unrecognized name fails with an unknown-format error naming the input.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "binary":
		return Binary, nil
	case "csv":
		return CSV, nil
	case "text":
		return Text, nil
	default:
		return 0, &Error{Kind: KindUnknownFormat, Value: name}
	}
}

func (f Format) String() string {
	switch f {
	case Binary:
		return "binary"
	case CSV:
		return "csv"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// NewReader returns the decoder for the format.
func (f Format) NewReader() record.Reader {
	switch f {
	case Binary:
		return NewBinaryReader()
	case CSV:
		return NewCSVReader()
	default:
		return NewTextReader()
	}
}

// NewWriter returns the encoder for the format.
func (f Format) NewWriter() record.Writer {
	switch f {
	case Binary:
		return NewBinaryWriter()
	case CSV:
		return NewCSVWriter()
	default:
		return NewTextWriter()
	}
}
