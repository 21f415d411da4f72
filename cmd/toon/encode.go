package main

import (
	"github.com/spf13/cobra"

	"github.com/tooncodec/toon"
	"github.com/tooncodec/toon/internal/toonjson"
)

var (
	encodeCompact       bool
	encodeTabularArrays bool
	encodeIndent        int
	encodeStrict        bool
	encodeOutput        string
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Convert JSON into TOON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}

		raw, err := readInput(input)
		if err != nil {
			return ioError(err)
		}

		v, err := toonjson.ToValue(raw)
		if err != nil {
			return ioError(err)
		}

		opts := toon.EncodeOptions{
			Compact:       encodeCompact,
			TabularArrays: encodeTabularArrays,
			Indent:        encodeIndent,
			Strict:        encodeStrict,
		}
		out, err := toon.Encode(v, opts)
		if err != nil {
			if encodeStrict {
				return validationError(err)
			}
			return ioError(err)
		}

		if err := writeOutput(encodeOutput, out); err != nil {
			return ioError(err)
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeCompact, "compact", false, "emit TOON-Compact binary form instead of TOON-Text")
	encodeCmd.Flags().BoolVar(&encodeTabularArrays, "tabular-arrays", false, "use the tabular layout for eligible arrays")
	encodeCmd.Flags().IntVar(&encodeIndent, "indent", 0, "number of spaces per indent level (default 2)")
	encodeCmd.Flags().BoolVar(&encodeStrict, "strict", false, "fail on tabular-ineligible arrays instead of falling back")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "output file (default stdout)")
}
