package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/sculkbyte/nbt/xmlbridge"
)

var compileCmd = &cobra.Command{
	Use:     "compile [file]",
	Aliases: []string{"c"},
	Short:   "Compile an XML document into an NBT document",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		root, err := xmlbridge.Decode(bufio.NewReader(in))
		if err != nil {
			return err
		}

		out, err := openOutput()
		if err != nil {
			return err
		}
		defer out.Close()

		w := bufio.NewWriter(out)
		if err := writeSelectedFormat(w, root); err != nil {
			return err
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
