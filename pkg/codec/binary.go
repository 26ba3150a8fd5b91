package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/ypbank/txconv/pkg/record"
)

// binaryMagic tags the start of every binary frame.
const binaryMagic = "YPBN"

// binaryFixedSize is the byte count of the fixed payload fields:
// id(8) + type(1) + from(8) + to(8) + amount(8) + timestamp(8) + status(1) +
// description length(4).
const binaryFixedSize = 46

// Binary record-type tags. The wire order differs from the record.Type order.
const (
	binTagDeposit    = 0
	binTagTransfer   = 1
	binTagWithdrawal = 2
)

// BinaryReader decodes the framed binary format.
type BinaryReader struct{}

// NewBinaryReader creates a binary format reader.
func NewBinaryReader() *BinaryReader {
	return &BinaryReader{}
}

// ReadAll decodes frames until a clean end of stream at a frame boundary.
// Any other short read, an unexpected frame header, an out-of-range tag or a
// non-UTF-8 description fails the whole decode.
func (*BinaryReader) ReadAll(r io.Reader) ([]record.Record, error) {
	br := bufio.NewReader(r)

	var records []record.Record
	for {
		var magic [4]byte
		if _, err := io.ReadFull(br, magic[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, readErr("read frame header", err)
		}
		if string(magic[:]) != binaryMagic {
			return nil, parseErr(string(magic[:]), nil)
		}

		// The frame length is written on encode but decode does not
		// cross-check it; the fixed fields and the description length
		// fully determine the payload.
		var frameLen [4]byte
		if _, err := io.ReadFull(br, frameLen[:]); err != nil {
			return nil, readErr("read frame length", err)
		}

		var fixed [binaryFixedSize]byte
		if _, err := io.ReadFull(br, fixed[:]); err != nil {
			return nil, readErr("read record fields", err)
		}

		id := binary.BigEndian.Uint64(fixed[0:8])
		typeTag := fixed[8]
		fromUserID := binary.BigEndian.Uint64(fixed[9:17])
		toUserID := binary.BigEndian.Uint64(fixed[17:25])
		amount := binary.BigEndian.Uint64(fixed[25:33])
		timestamp := binary.BigEndian.Uint64(fixed[33:41])
		statusTag := fixed[41]
		descLen := binary.BigEndian.Uint32(fixed[42:46])

		desc := make([]byte, descLen)
		if _, err := io.ReadFull(br, desc); err != nil {
			return nil, readErr("read description", err)
		}

		typ, err := typeFromTag(typeTag)
		if err != nil {
			return nil, err
		}
		status, err := statusFromTag(statusTag)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(desc) {
			return nil, fieldValueErr("DESCRIPTION", string(desc))
		}

		records = append(records, record.New(id, typ, fromUserID, toUserID, amount, timestamp, status, string(desc)))
	}

	return records, nil
}

// BinaryWriter encodes the framed binary format.
type BinaryWriter struct{}

// NewBinaryWriter creates a binary format writer.
func NewBinaryWriter() *BinaryWriter {
	return &BinaryWriter{}
}

// WriteAll writes one frame per record: magic, payload length, payload.
func (*BinaryWriter) WriteAll(w io.Writer, records []record.Record) error {
	for _, rec := range records {
		payload := make([]byte, 0, binaryFixedSize+len(rec.Description))
		payload = binary.BigEndian.AppendUint64(payload, rec.ID)
		payload = append(payload, typeTag(rec.Type))
		payload = binary.BigEndian.AppendUint64(payload, rec.FromUserID)
		payload = binary.BigEndian.AppendUint64(payload, rec.ToUserID)
		payload = binary.BigEndian.AppendUint64(payload, rec.Amount)
		payload = binary.BigEndian.AppendUint64(payload, rec.Timestamp)
		payload = append(payload, statusTag(rec.Status))
		payload = binary.BigEndian.AppendUint32(payload, uint32(len(rec.Description)))
		payload = append(payload, rec.Description...)

		var head [8]byte
		copy(head[0:4], binaryMagic)
		binary.BigEndian.PutUint32(head[4:8], uint32(len(payload)))

		if _, err := w.Write(head[:]); err != nil {
			return writeErr("write frame header", err)
		}
		if _, err := w.Write(payload); err != nil {
			return writeErr("write frame payload", err)
		}
	}

	return nil
}

func typeFromTag(tag byte) (record.Type, error) {
	switch tag {
	case binTagDeposit:
		return record.Deposit, nil
	case binTagTransfer:
		return record.Transfer, nil
	case binTagWithdrawal:
		return record.Withdrawal, nil
	default:
		return 0, fieldValueErr("TX_TYPE", strconv.Itoa(int(tag)))
	}
}

func typeTag(typ record.Type) byte {
	switch typ {
	case record.Deposit:
		return binTagDeposit
	case record.Transfer:
		return binTagTransfer
	default:
		return binTagWithdrawal
	}
}

func statusFromTag(tag byte) (record.Status, error) {
	switch tag {
	case 0:
		return record.Success, nil
	case 1:
		return record.Failure, nil
	case 2:
		return record.Pending, nil
	default:
		return 0, fieldValueErr("STATUS", strconv.Itoa(int(tag)))
	}
}

func statusTag(status record.Status) byte {
	switch status {
	case record.Success:
		return 0
	case record.Failure:
		return 1
	default:
		return 2
	}
}
