package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ypbank/txconv/pkg/record"
)

const textFixture = `# Record 1 (Deposit)
TX_ID: 1001
TX_TYPE: DEPOSIT
FROM_USER_ID: 0
TO_USER_ID: 501
AMOUNT: 50000
TIMESTAMP: 1672531200000
STATUS: SUCCESS
DESCRIPTION: "Initial account funding"

# Record 2 (Transfer), keys out of order
TX_ID: 1002
TIMESTAMP: 1672534800000
STATUS: FAILURE
TX_TYPE: TRANSFER
FROM_USER_ID: 501
TO_USER_ID: 502
AMOUNT: 15000
DESCRIPTION: "Payment for services, invoice #123"

# Record 3 (Withdrawal), no trailing blank line
TX_ID: 1003
TX_TYPE: WITHDRAWAL
FROM_USER_ID: 502
TO_USER_ID: 0
AMOUNT: 1000
TIMESTAMP: 1672538400000
STATUS: PENDING
DESCRIPTION: "ATM withdrawal"`

func TestText_ReadAll(t *testing.T) {
	records, err := NewTextReader().ReadAll(strings.NewReader(textFixture))
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)
}

func TestText_WriteAll(t *testing.T) {
	records := []record.Record{
		record.New(1001, record.Deposit, 0, 501, 50000, 1672531200000, record.Success, "Initial account funding"),
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().WriteAll(&buf, records))

	want := `TX_ID: 1001
TX_TYPE: DEPOSIT
FROM_USER_ID: 0
TO_USER_ID: 501
AMOUNT: 50000
TIMESTAMP: 1672531200000
STATUS: SUCCESS
DESCRIPTION: "Initial account funding"

`
	assert.Equal(t, want, buf.String())
}

func TestText_RoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().WriteAll(&buf, records))

	decoded, err := NewTextReader().ReadAll(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestText_DescriptionWithDelimiters(t *testing.T) {
	records := []record.Record{
		record.New(9, record.Deposit, 0, 1, 1, 1, record.Success, "Pay, invoice #1: urgent"),
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().WriteAll(&buf, records))

	decoded, err := NewTextReader().ReadAll(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "Pay, invoice #1: urgent", decoded[0].Description)
}

func TestText_RoundTrip_LongDescription(t *testing.T) {
	// Descriptions are unbounded in the model, so the reader must not cap
	// line length: the writer's own output has to decode whatever it emits.
	records := []record.Record{
		record.New(1, record.Deposit, 0, 1, 1, 1, record.Success, strings.Repeat("a", 2<<20)),
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().WriteAll(&buf, records))

	decoded, err := NewTextReader().ReadAll(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestText_EmptyAndCommentOnlyInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "blank lines", input: "\n\n\n"},
		{name: "comments and blanks", input: "# nothing here\n\n# still nothing\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := NewTextReader().ReadAll(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestText_DuplicateField(t *testing.T) {
	input := "TX_ID: 1\nTX_ID: 1\n"
	_, err := NewTextReader().ReadAll(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindFieldDuplicate))
	assert.Contains(t, err.Error(), "TX_ID")
}

func TestText_MissingField(t *testing.T) {
	input := strings.Replace(textFixture, "TX_ID: 1001\n", "", 1)
	_, err := NewTextReader().ReadAll(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindFieldMissing))
	assert.Contains(t, err.Error(), "TX_ID")
}

func TestText_LineWithoutSeparator(t *testing.T) {
	input := "TX_ID: 1\nnot a field line\n"
	_, err := NewTextReader().ReadAll(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindParse))
	assert.Contains(t, err.Error(), "not a field line")
}

func TestText_FieldValueErrors(t *testing.T) {
	block := map[string]string{
		"TX_ID":        "1",
		"TX_TYPE":      "DEPOSIT",
		"FROM_USER_ID": "0",
		"TO_USER_ID":   "2",
		"AMOUNT":       "10",
		"TIMESTAMP":    "1",
		"STATUS":       "SUCCESS",
		"DESCRIPTION":  `"ok"`,
	}

	testCases := []struct {
		name  string
		field string
		value string
	}{
		{name: "bad integer", field: "AMOUNT", value: "ten"},
		{name: "negative integer", field: "TX_ID", value: "-1"},
		{name: "unknown type literal", field: "TX_TYPE", value: "UNKNOWN"},
		{name: "unknown status literal", field: "STATUS", value: "MAYBE"},
		{name: "unquoted description", field: "DESCRIPTION", value: "no quotes"},
		{name: "single quote character", field: "DESCRIPTION", value: `"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var b strings.Builder
			for _, key := range textFields {
				value := block[key]
				if key == tc.field {
					value = tc.value
				}
				b.WriteString(key + ": " + value + "\n")
			}

			_, err := NewTextReader().ReadAll(strings.NewReader(b.String()))
			require.Error(t, err)
			assert.True(t, IsKind(err, KindFieldValue))
			assert.Contains(t, err.Error(), tc.field)
			assert.Contains(t, err.Error(), tc.value)
		})
	}
}

// The on-disk format has no escaping for descriptions: embedded quotes happen
// to survive the single wrap-and-strip, but an embedded newline splits the
// DESCRIPTION line and the writer's output no longer decodes. Known format
// limitation, documented here rather than fixed.
func TestText_NewlineDescriptionDoesNotRoundTrip(t *testing.T) {
	records := []record.Record{
		record.New(1, record.Deposit, 0, 1, 1, 1, record.Success, "line one\nline two"),
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().WriteAll(&buf, records))

	_, err := NewTextReader().ReadAll(&buf)
	require.Error(t, err)
}
