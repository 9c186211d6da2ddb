// Command utfdump-mkdata compiles a local UnicodeData.txt (optionally
// gzip-compressed) into the encoded database blob served by utfdump.
package main

import (
	"compress/gzip"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/utfdump"
	"github.com/npillmayer/utfdump/ucd"
)

var (
	outPath string
	gzipOut bool
)

func main() {
	root := &cobra.Command{
		Use:          "utfdump-mkdata UnicodeData.txt[.gz]",
		Short:        "Compile UnicodeData.txt into an encoded database blob",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVarP(&outPath, "out", "o", "unicode_data_encoded",
		"Output path for the encoded blob")
	root.Flags().BoolVarP(&gzipOut, "gzip", "z", false,
		"Gzip-compress the output, for pre-staging in source trees")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	fd, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer fd.Close()

	rows, err := ucd.Open(fd)
	if err != nil {
		return err
	}
	blob, err := utfdump.Compile(args[0], rows)
	if err != nil {
		return err
	}
	// The blob must re-open cleanly before it is written out.
	if _, err := utfdump.FromBytes(blob); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	if err := writeBlob(outPath, blob); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(blob), outPath)
	return nil
}

func writeBlob(path string, blob []byte) error {
	if !gzipOut {
		return os.WriteFile(path, blob, 0o644)
	}
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(fd)
	if _, err := zw.Write(blob); err != nil {
		fd.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
