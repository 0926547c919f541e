package main

import (
	"github.com/spf13/cobra"

	"github.com/sculkbyte/nbt/xmlbridge"
)

var decompileCmd = &cobra.Command{
	Use:     "decompile [file]",
	Aliases: []string{"d"},
	Short:   "Decompile an NBT document into its textual XML form",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		root, err := readSelectedFormat(in)
		if err != nil {
			return err
		}

		out, err := openOutput()
		if err != nil {
			return err
		}
		defer out.Close()

		return xmlbridge.Encode(out, root)
	},
}

func init() {
	rootCmd.AddCommand(decompileCmd)
}
