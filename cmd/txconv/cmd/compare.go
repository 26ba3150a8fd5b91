package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ypbank/txconv/pkg/diff"
)

var (
	compareFile1   string
	compareFile2   string
	compareFormat1 string
	compareFormat2 string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two transaction files",
	Long: `Compare two transaction files, which may use different formats.

Records are matched by transaction id. The command reports ids present in
only one file and ids whose records differ.

Example:
  txconv compare --file1 a.bin --format1 binary --file2 b.csv --format2 csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format1, err := resolveFormat(compareFormat1, cfg.InputFormat)
		if err != nil {
			return err
		}
		format2, err := resolveFormat(compareFormat2, cfg.InputFormat)
		if err != nil {
			return err
		}

		records1, err := readRecords(compareFile1, format1)
		if err != nil {
			return err
		}
		records2, err := readRecords(compareFile2, format2)
		if err != nil {
			return err
		}

		result := diff.Compare(records1, records2)
		if result.Identical() {
			cmd.Println("Transactions are the same")
			return nil
		}

		if len(result.OnlyInFirst) > 0 {
			cmd.Printf("Transactions only in file 1: %s\n", joinIDs(result.OnlyInFirst))
		}
		if len(result.OnlyInSecond) > 0 {
			cmd.Printf("Transactions only in file 2: %s\n", joinIDs(result.OnlyInSecond))
		}
		if len(result.Different) > 0 {
			cmd.Printf("Transactions that differ: %s\n", joinIDs(result.Different))
		}
		return nil
	},
}

func joinIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareFile1, "file1", "", "First file")
	compareCmd.Flags().StringVar(&compareFormat1, "format1", "", "First file format: binary, csv or text")
	compareCmd.Flags().StringVar(&compareFile2, "file2", "", "Second file")
	compareCmd.Flags().StringVar(&compareFormat2, "format2", "", "Second file format: binary, csv or text")
	_ = compareCmd.MarkFlagRequired("file1")
	_ = compareCmd.MarkFlagRequired("file2")
}
