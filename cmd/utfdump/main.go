// Command utfdump reads bytes from standard input, decodes them as UTF-8
// and prints what the Unicode Character Database says about each codepoint.
//
// Invalid UTF-8 renders the replacement character together with the
// consumed bad bytes in hex; codepoints without database records render
// their fields as "??".
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/npillmayer/utfdump"
	"github.com/npillmayer/utfdump/nameindex"
	"github.com/npillmayer/utfdump/utf8stream"
)

const defaultDataPath = "unicode_data_encoded"

var (
	fullCategoryNames bool
	dataPath          string
	searchPrefix      string
)

func main() {
	root := &cobra.Command{
		Use:          "utfdump",
		Short:        "Describe the Unicode codepoints in a byte stream",
		Long: "utfdump decodes standard input as UTF-8 and prints one table row per\n" +
			"codepoint with its Unicode Character Database record.",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().BoolVarP(&fullCategoryNames, "full-category-names", "f", false,
		"Display category names in plain English, rather than using their abbreviated names")
	root.Flags().StringVar(&dataPath, "data", "",
		"Path to the encoded database blob (default $UTFDUMP_DATA)")
	root.Flags().StringVar(&searchPrefix, "search", "",
		"Search character names by prefix instead of reading input")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	data, err := openData()
	if err != nil {
		return err
	}
	if searchPrefix != "" {
		return search(cmd.OutOrStdout(), data)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("no input: pipe bytes into utfdump")
	}
	return dump(cmd.OutOrStdout(), data, os.Stdin)
}

func openData() (utfdump.UnicodeData, error) {
	path := dataPath
	if path == "" {
		path = os.Getenv("UTFDUMP_DATA")
	}
	if path == "" {
		path = defaultDataPath
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return utfdump.UnicodeData{}, err
	}
	return utfdump.FromBytes(blob)
}

func dump(w io.Writer, data utfdump.UnicodeData, in io.Reader) error {
	table := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(table, "\tCode\tUTF-8\tName\tCategory\tCombining")

	decoder := utf8stream.NewDecoder(in)
	for {
		r, err := decoder.Next()
		if err == io.EOF {
			break
		}
		var decodeErr *utf8stream.DecodeError
		if errors.As(err, &decodeErr) {
			fmt.Fprintf(table, "�\t??\t%s\t<invalid>\t??\t??\n",
				hexBytes(decodeErr.ConsumedBytes()))
			continue
		}
		if err != nil {
			return err
		}
		writeRow(table, data, r)
	}
	return table.Flush()
}

func writeRow(table io.Writer, data utfdump.UnicodeData, r rune) {
	name, category, combining := "??", "??", "??"
	glyph := string(r)

	if cd, ok := data.Get(uint32(r)); ok {
		name = cd.Name()
		if fullCategoryNames {
			category = cd.Category().FullName()
		} else {
			category = cd.Category().Abbreviation()
		}
		ccc := cd.CombiningClass()
		combining = ccc.String()
		if ccc.IsCombining() {
			// Render combining marks on a dotted circle.
			glyph = "◌" + glyph
		}
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	fmt.Fprintf(table, "%s\tU+%04X\t%s\t%s\t%s\t%s\n",
		glyph, r, hexBytes(buf[:n]), name, category, combining)
}

func search(w io.Writer, data utfdump.UnicodeData) error {
	index := nameindex.New(data)
	names := index.PrefixSearch(searchPrefix)
	if len(names) == 0 {
		return fmt.Errorf("no character names with prefix %q", searchPrefix)
	}
	table := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, name := range names {
		for _, codepoint := range index.Lookup(name) {
			fmt.Fprintf(table, "U+%04X\t%s\n", codepoint, name)
		}
	}
	return table.Flush()
}

func hexBytes(bs []byte) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return strings.Join(parts, " ")
}
