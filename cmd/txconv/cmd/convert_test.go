package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ypbank/txconv/pkg/codec"
	"github.com/ypbank/txconv/pkg/record"
)

const testCSV = `TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION
1001,DEPOSIT,0,501,50000,1672531200000,SUCCESS,Initial account funding
1002,TRANSFER,501,502,15000,1672534800000,FAILURE,"Payment for services, invoice #123"
`

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestResolveFormat(t *testing.T) {
	format, err := resolveFormat("binary", "csv")
	require.NoError(t, err)
	assert.Equal(t, codec.Binary, format)

	format, err = resolveFormat("", "csv")
	require.NoError(t, err)
	assert.Equal(t, codec.CSV, format)

	_, err = resolveFormat("", "")
	assert.Error(t, err)
}

func TestReadRecords(t *testing.T) {
	path := writeTempFile(t, "tx.csv", testCSV)

	records, err := readRecords(path, codec.CSV)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, uint64(1001), records[0].ID)
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := readRecords(filepath.Join(t.TempDir(), "absent.csv"), codec.CSV)
	require.Error(t, err)
	assert.True(t, codec.IsKind(err, codec.KindRead))
}

func TestConvertCommand_CSVToText(t *testing.T) {
	input := writeTempFile(t, "tx.csv", testCSV)
	output := filepath.Join(t.TempDir(), "tx.txt")

	rootCmd.SetArgs([]string{
		"convert",
		"--input", input,
		"--input-format", "csv",
		"--output-format", "text",
		"--output", output,
	})
	require.NoError(t, rootCmd.Execute())

	file, err := os.Open(output)
	require.NoError(t, err)
	defer file.Close()

	records, err := codec.NewTextReader().ReadAll(file)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Payment for services, invoice #123", records[1].Description)
}

func TestCompareCommand(t *testing.T) {
	file1 := writeTempFile(t, "a.csv", testCSV)
	file2 := writeTempFile(t, "b.csv", testCSV)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs([]string{
		"compare",
		"--file1", file1,
		"--format1", "csv",
		"--file2", file2,
		"--format2", "csv",
	})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Transactions are the same")
}

// failingWriter writes some output before failing, like an encoder hitting a
// bad record partway through a batch.
type failingWriter struct{}

func (failingWriter) WriteAll(w io.Writer, records []record.Record) error {
	if _, err := io.WriteString(w, "partial"); err != nil {
		return err
	}
	return errors.New("encode failed")
}

func TestWriteRecordsFile_NoPartialOutputOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	err := writeRecordsFile(path, failingWriter{}, nil)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestWriteRecordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, writeRecordsFile(path, codec.NewCSVWriter(), nil))
	assert.FileExists(t, path)
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "1, 2, 30", joinIDs([]uint64{1, 2, 30}))
	assert.Equal(t, "", joinIDs(nil))
}
