package main

import (
	"github.com/spf13/cobra"

	"github.com/tooncodec/toon"
	"github.com/tooncodec/toon/internal/toonjson"
)

var (
	decodeStrict bool
	decodeOutput string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Convert TOON into JSON",
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

		v, err := toon.Decode(raw, toon.DecodeOptions{Strict: decodeStrict})
		if err != nil {
			if decodeStrict {
				return validationError(err)
			}
			return ioError(err)
		}

		out, err := toonjson.FromValue(v)
		if err != nil {
			return ioError(err)
		}

		if err := writeOutput(decodeOutput, out); err != nil {
			return ioError(err)
		}
		return nil
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", false, "treat forward-looking warnings as hard errors")
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "output file (default stdout)")
}
