package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ypbank/txconv/pkg/record"
)

// textSeparator splits a text line into key and value.
const textSeparator = ": "

// textFields is the required key set, in the order blocks are written.
var textFields = []string{
	"TX_ID", "TX_TYPE", "FROM_USER_ID", "TO_USER_ID",
	"AMOUNT", "TIMESTAMP", "STATUS", "DESCRIPTION",
}

// TextReader decodes the KEY: VALUE block format.
type TextReader struct{}

// NewTextReader creates a text format reader.
func NewTextReader() *TextReader {
	return &TextReader{}
}

// ReadAll decodes blocks of KEY: VALUE lines separated by blank lines. Lines
// starting with # are comments. Keys may appear in any order within a block
// but not twice; a blank line with no pending fields separates nothing and is
// skipped, so an all-comment or all-blank input decodes to an empty set.
// Lines are unbounded, since descriptions are unbounded in the model.
func (*TextReader) ReadAll(r io.Reader) ([]record.Record, error) {
	br := bufio.NewReader(r)

	fields := make(map[string]string)
	var records []record.Record
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, readErr("read text line", err)
		}
		eof := err == io.EOF
		if eof && line == "" {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		switch {
		case line == "":
			if len(fields) > 0 {
				rec, err := recordFromFields(fields)
				if err != nil {
					return nil, err
				}
				records = append(records, rec)
				fields = make(map[string]string)
			}
		case strings.HasPrefix(line, "#"):
			// comment
		default:
			key, value, ok := strings.Cut(line, textSeparator)
			if !ok {
				return nil, parseErr(line, nil)
			}
			if _, dup := fields[key]; dup {
				return nil, &Error{Kind: KindFieldDuplicate, Field: key}
			}
			fields[key] = value
		}

		if eof {
			break
		}
	}

	// Fields pending at end of input form the final block.
	if len(fields) > 0 {
		rec, err := recordFromFields(fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func recordFromFields(fields map[string]string) (record.Record, error) {
	id, err := textUint(fields, "TX_ID")
	if err != nil {
		return record.Record{}, err
	}
	fromUserID, err := textUint(fields, "FROM_USER_ID")
	if err != nil {
		return record.Record{}, err
	}
	toUserID, err := textUint(fields, "TO_USER_ID")
	if err != nil {
		return record.Record{}, err
	}
	amount, err := textUint(fields, "AMOUNT")
	if err != nil {
		return record.Record{}, err
	}
	timestamp, err := textUint(fields, "TIMESTAMP")
	if err != nil {
		return record.Record{}, err
	}

	typLiteral, err := textValue(fields, "TX_TYPE")
	if err != nil {
		return record.Record{}, err
	}
	typ, err := typeFromLiteral("TX_TYPE", typLiteral)
	if err != nil {
		return record.Record{}, err
	}

	statusLiteral, err := textValue(fields, "STATUS")
	if err != nil {
		return record.Record{}, err
	}
	status, err := statusFromLiteral("STATUS", statusLiteral)
	if err != nil {
		return record.Record{}, err
	}

	desc, err := textValue(fields, "DESCRIPTION")
	if err != nil {
		return record.Record{}, err
	}
	// The description is stored wrapped in literal double quotes.
	if len(desc) < 2 || !strings.HasPrefix(desc, `"`) || !strings.HasSuffix(desc, `"`) {
		return record.Record{}, fieldValueErr("DESCRIPTION", desc)
	}
	desc = desc[1 : len(desc)-1]

	return record.New(id, typ, fromUserID, toUserID, amount, timestamp, status, desc), nil
}

func textValue(fields map[string]string, key string) (string, error) {
	value, ok := fields[key]
	if !ok {
		return "", &Error{Kind: KindFieldMissing, Field: key}
	}
	return value, nil
}

func textUint(fields map[string]string, key string) (uint64, error) {
	value, err := textValue(fields, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fieldValueErr(key, value)
	}
	return n, nil
}

// TextWriter encodes the KEY: VALUE block format.
type TextWriter struct{}

// NewTextWriter creates a text format writer.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// WriteAll writes one block per record with the full key set in fixed order,
// each block followed by exactly one blank line. The description is wrapped
// in double quotes; embedded quotes and newlines are not escaped, so a
// description containing a newline produces output that does not decode.
// That is a limitation of the on-disk format itself.
func (*TextWriter) WriteAll(w io.Writer, records []record.Record) error {
	for _, rec := range records {
		values := map[string]string{
			"TX_ID":        strconv.FormatUint(rec.ID, 10),
			"TX_TYPE":      rec.Type.String(),
			"FROM_USER_ID": strconv.FormatUint(rec.FromUserID, 10),
			"TO_USER_ID":   strconv.FormatUint(rec.ToUserID, 10),
			"AMOUNT":       strconv.FormatUint(rec.Amount, 10),
			"TIMESTAMP":    strconv.FormatUint(rec.Timestamp, 10),
			"STATUS":       rec.Status.String(),
			"DESCRIPTION":  `"` + rec.Description + `"`,
		}
		for _, key := range textFields {
			if _, err := fmt.Fprintf(w, "%s%s%s\n", key, textSeparator, values[key]); err != nil {
				return writeErr("write text block", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return writeErr("write block separator", err)
		}
	}

	return nil
}
