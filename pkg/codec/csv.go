package codec

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ypbank/txconv/pkg/record"
)

// csvHeader is the fixed column schema, in order.
var csvHeader = []string{
	"TX_ID", "TX_TYPE", "FROM_USER_ID", "TO_USER_ID",
	"AMOUNT", "TIMESTAMP", "STATUS", "DESCRIPTION",
}

// CSVReader decodes the tabular format.
type CSVReader struct{}

// NewCSVReader creates a CSV format reader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// ReadAll decodes a header row plus one record per data row. Quoting and
// escaping follow encoding/csv; a missing or reordered header, a row with the
// wrong shape or an unparsable integer is a parse error, while an unknown
// TX_TYPE or STATUS literal is a field-value error carrying the literal.
func (*CSVReader) ReadAll(r io.Reader) ([]record.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		// A zero-byte file is a valid, empty record set.
		return nil, nil
	}
	if err != nil {
		return nil, parseErr("", err)
	}
	if !slices.Equal(header, csvHeader) {
		return nil, parseErr(strings.Join(header, ","), nil)
	}

	var records []record.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseErr("", err)
		}

		rec, err := recordFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func recordFromRow(row []string) (record.Record, error) {
	id, err := csvUint(row[0])
	if err != nil {
		return record.Record{}, err
	}
	fromUserID, err := csvUint(row[2])
	if err != nil {
		return record.Record{}, err
	}
	toUserID, err := csvUint(row[3])
	if err != nil {
		return record.Record{}, err
	}
	amount, err := csvUint(row[4])
	if err != nil {
		return record.Record{}, err
	}
	timestamp, err := csvUint(row[5])
	if err != nil {
		return record.Record{}, err
	}

	typ, err := typeFromLiteral("TX_TYPE", row[1])
	if err != nil {
		return record.Record{}, err
	}
	status, err := statusFromLiteral("STATUS", row[6])
	if err != nil {
		return record.Record{}, err
	}

	return record.New(id, typ, fromUserID, toUserID, amount, timestamp, status, row[7]), nil
}

// csvUint parses an unsigned integer column. A bad integer breaks the row
// shape rather than a single field's enumeration, so it is a parse error.
func csvUint(value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, parseErr(value, err)
	}
	return n, nil
}

// CSVWriter encodes the tabular format.
type CSVWriter struct{}

// NewCSVWriter creates a CSV format writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteAll writes the header row and one data row per record. Fields
// containing delimiters or quotes are quoted by encoding/csv.
func (*CSVWriter) WriteAll(w io.Writer, records []record.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return writeErr("write csv header", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.FormatUint(rec.ID, 10),
			rec.Type.String(),
			strconv.FormatUint(rec.FromUserID, 10),
			strconv.FormatUint(rec.ToUserID, 10),
			strconv.FormatUint(rec.Amount, 10),
			strconv.FormatUint(rec.Timestamp, 10),
			rec.Status.String(),
			rec.Description,
		}
		if err := cw.Write(row); err != nil {
			return writeErr("write csv row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return writeErr("flush csv", err)
	}
	return nil
}

func typeFromLiteral(field, literal string) (record.Type, error) {
	switch literal {
	case "DEPOSIT":
		return record.Deposit, nil
	case "WITHDRAWAL":
		return record.Withdrawal, nil
	case "TRANSFER":
		return record.Transfer, nil
	default:
		return 0, fieldValueErr(field, literal)
	}
}

func statusFromLiteral(field, literal string) (record.Status, error) {
	switch literal {
	case "SUCCESS":
		return record.Success, nil
	case "FAILURE":
		return record.Failure, nil
	case "PENDING":
		return record.Pending, nil
	default:
		return 0, fieldValueErr(field, literal)
	}
}
