// Command nbtc compiles NBT documents to and from a textual XML form.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nbtc: %v\n", err)
		os.Exit(1)
	}
}
