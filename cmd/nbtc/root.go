package main

import "github.com/spf13/cobra"

var (
	outputFile string
	gzipFlag   bool
	zlibFlag   bool
)

var rootCmd = &cobra.Command{
	Use:           "nbtc",
	Short:         "Compile and decompile NBT documents against a textual XML form",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "file", "f", "", "write output to this path instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&gzipFlag, "gzip", "z", false, "use gzip framing")
	rootCmd.PersistentFlags().BoolVar(&zlibFlag, "zlib", false, "use zlib framing")

	// cobra registers "help" on its own; "h" just forwards to it so the
	// command, like compile/decompile/watch, has a one-letter alias.
	rootCmd.AddCommand(&cobra.Command{
		Use:    "h",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().Help()
		},
	})
}
