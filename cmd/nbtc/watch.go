package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sculkbyte/nbt/xmlbridge"
)

var watchCmd = &cobra.Command{
	Use:     "watch <file>",
	Aliases: []string{"w"},
	Short:   "Recompile an XML document to NBT every time it is saved",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchAndCompile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchAndCompile compiles path once, then recompiles it on every write
// or create event fsnotify reports for it, until one of the watcher's
// channels closes. Watcher errors are reported to stderr and watching
// continues.
func watchAndCompile(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// fsnotify watches directories, not individual files, so editors
	// that replace the file on save (write-to-temp-then-rename) still
	// surface an event for it.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	compileAndReport(path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			compileAndReport(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "nbtc: watch: %v\n", err)
		}
	}
}

func compileAndReport(path string) {
	if err := compileOnce(path); err != nil {
		fmt.Fprintf(os.Stderr, "nbtc: %v\n", err)
	}
}

func compileOnce(path string) error {
	in, err := os.Open(path)
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
}
