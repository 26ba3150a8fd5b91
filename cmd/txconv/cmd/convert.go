package cmd

import (
	"bufio"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ypbank/txconv/pkg/record"
)

var (
	convertInput        string
	convertOutput       string
	convertInputFormat  string
	convertOutputFormat string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a transaction file to another format",
	Long: `Convert a transaction file to another format.

Reads the whole input file, decodes it with the input format and writes the
records in the output format to stdout or to --output.

Example:
  txconv convert --input tx.bin --input-format binary --output-format csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inFormat, err := resolveFormat(convertInputFormat, cfg.InputFormat)
		if err != nil {
			return err
		}
		outFormat, err := resolveFormat(convertOutputFormat, cfg.OutputFormat)
		if err != nil {
			return err
		}

		records, err := readRecords(convertInput, inFormat)
		if err != nil {
			return err
		}

		if convertOutput != "" {
			if err := writeRecordsFile(convertOutput, outFormat.NewWriter(), records); err != nil {
				return err
			}
		} else {
			bw := bufio.NewWriter(cmd.OutOrStdout())
			if err := outFormat.NewWriter().WriteAll(bw, records); err != nil {
				return err
			}
			if err := bw.Flush(); err != nil {
				return err
			}
		}

		log.WithFields(log.Fields{
			"records": len(records),
			"from":    inFormat.String(),
			"to":      outFormat.String(),
		}).Info("converted records")
		return nil
	},
}

// writeRecordsFile encodes records into path. If encoding fails the file is
// removed again, so a failed conversion leaves no partial output behind.
func writeRecordsFile(path string, w record.Writer, records []record.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(file)
	err = w.WriteAll(bw, records)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertInput, "input", "", "Input file")
	convertCmd.Flags().StringVar(&convertInputFormat, "input-format", "", "Input format: binary, csv or text")
	convertCmd.Flags().StringVar(&convertOutputFormat, "output-format", "", "Output format: binary, csv or text")
	convertCmd.Flags().StringVar(&convertOutput, "output", "", "Output file (default stdout)")
	_ = convertCmd.MarkFlagRequired("input")
}
