// Package record defines the canonical transaction representation shared by
// every file format, and the reader/writer capabilities a format must provide.
package record

import "io"

// Type identifies the kind of transaction a record describes.
type Type uint8

const (
	Deposit Type = iota
	Withdrawal
	Transfer
)

// String returns the literal used by the tabular and text formats.
func (t Type) String() string {
	switch t {
	case Deposit:
		return "DEPOSIT"
	case Withdrawal:
		return "WITHDRAWAL"
	case Transfer:
		return "TRANSFER"
	default:
		return "UNKNOWN"
	}
}

// Status identifies the processing outcome of a transaction.
type Status uint8

const (
	Success Status = iota
	Failure
	Pending
)

// String returns the literal used by the tabular and text formats.
func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case Pending:
		return "PENDING"
	default:
		return "UNKNOWN"
	}
}

// Record is the format-independent transaction entry. All fields are value
// types, so two records compare equal with == exactly when they are
// structurally equal. A Record is never mutated after construction.
//
// FromUserID and ToUserID are derived from Type: a Deposit has no sender and a
// Withdrawal has no receiver, and the unused field is always zero. New
// enforces this, so decoded records can round-trip through the flat formats
// without the type and the user ids disagreeing.
type Record struct {
	ID          uint64
	Type        Type
	FromUserID  uint64
	ToUserID    uint64
	Amount      uint64
	Timestamp   uint64
	Status      Status
	Description string
}

// New builds a Record, zeroing whichever user id does not apply to typ.
func New(id uint64, typ Type, fromUserID, toUserID, amount, timestamp uint64, status Status, description string) Record {
	switch typ {
	case Deposit:
		fromUserID = 0
	case Withdrawal:
		toUserID = 0
	}
	return Record{
		ID:          id,
		Type:        typ,
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		Amount:      amount,
		Timestamp:   timestamp,
		Status:      status,
		Description: description,
	}
}

// Reader decodes an entire input stream into records. Implementations consume
// the stream to completion and fail on the first malformed record rather than
// skipping it.
type Reader interface {
	ReadAll(r io.Reader) ([]Record, error)
}

// Writer encodes records onto an output stream. Implementations satisfy the
// round-trip law: decoding their output yields the input records, up to the
// format's own documented normalization.
type Writer interface {
	WriteAll(w io.Writer, records []Record) error
}
