// Command code128encode renders a Code 128 (or GS1-128) symbol from a
// command-line argument or standard input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/gostudent/code128"
	"github.com/gostudent/code128/render"
)

var g = struct {
	output      string
	format      string
	moduleWidth int
	quietZone   int
	gs1         bool
	hibc        bool
	readerInit  bool
	suppressC   bool
	composite   string
}{
	moduleWidth: 2,
	quietZone:   -1,
	composite:   "off",
}

var compositeModes = map[string]code128.CompositeMode{
	"off": code128.CompositeOff,
	"cca": code128.CompositeCCA,
	"ccb": code128.CompositeCCB,
	"ccc": code128.CompositeCCC,
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `code128encode: render a Code 128 / GS1-128 symbol
Usage: code128encode [options] [string]

If no string is given, data is read from standard input and the final
newline is stripped.

`)
	getopt.CommandLine.PrintOptions(w)
}

func version() {
	fmt.Println("code128encode version 1.0.0")
	os.Exit(0)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func init() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version").SetFlag()
	getopt.FlagLong(&g.output, "output", 'o', `output file, or "-" for stdout [stdout]`, "file")
	getopt.FlagLong(&g.format, "format", 'f', "output format: png, pbm or text [auto]", "format")
	getopt.FlagLong(&g.moduleWidth, "module-width", 'w', "pixel width of one module", "n")
	getopt.FlagLong(&g.quietZone, "quiet-zone", 'q', "quiet zone width in modules [10]", "n")
	getopt.FlagLong(&g.gs1, "gs1", 'g', "encode as GS1-128 (translate '[' to FNC1)").SetFlag()
	getopt.FlagLong(&g.hibc, "hibc", 'H', "encode as HIBC (wrap readable text in '*')").SetFlag()
	getopt.FlagLong(&g.readerInit, "reader-init", 'r', "set the reader-initialisation flag").SetFlag()
	getopt.FlagLong(&g.suppressC, "no-code-c", 'C', "never switch into subset C").SetFlag()
	getopt.FlagLong(&g.composite, "composite", 'c', "composite linkage flag: off, cca, ccb or ccc", "mode")
}

func dataType() code128.DataType {
	switch {
	case g.gs1:
		return code128.GS1
	case g.hibc:
		return code128.HIBC
	default:
		return code128.Generic
	}
}

func main() {
	getopt.Parse()

	mode, ok := compositeModes[strings.ToLower(g.composite)]
	if !ok {
		fmt.Fprintf(os.Stderr, "code128encode: unknown composite mode %q\n", g.composite)
		usage()
	}

	content, err := readContent(getopt.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "code128encode:", err)
		os.Exit(1)
	}

	sym, err := code128.Encode(content, code128.Options{
		DataType:         dataType(),
		ReaderInit:       g.readerInit,
		Composite:        mode,
		ModeCSuppression: g.suppressC,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "code128encode:", err)
		os.Exit(1)
	}

	out, closeOut, err := openOutput(g.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, "code128encode:", err)
		os.Exit(1)
	}
	defer closeOut()

	if err := writeSymbol(out, sym); err != nil {
		fmt.Fprintln(os.Stderr, "code128encode:", err)
		os.Exit(1)
	}
}

func readContent(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func openOutput(name string) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, f.Close, nil
}

func writeSymbol(w io.Writer, sym *code128.EncodedSymbol) error {
	format := g.format
	if format == "" {
		if g.output == "" && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			format = "text"
		} else {
			format = "png"
		}
	}

	if format == "text" {
		bm, err := render.Render(sym, render.Options{ModuleWidth: 1, QuietZoneModules: g.quietZone})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, sym.Readable)
		_, err = io.WriteString(w, bm.StringWithChars("##", "  "))
		return err
	}

	bm, err := render.Render(sym, render.Options{ModuleWidth: g.moduleWidth, QuietZoneModules: g.quietZone})
	if err != nil {
		return err
	}

	switch format {
	case "png":
		return render.EncodePNG(w, bm)
	case "pbm":
		return render.EncodePBM(w, bm)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
