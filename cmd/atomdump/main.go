// Command atomdump prints or browses captured atom buffers.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/atom-runtime/atom"
	"github.com/wippyai/atom-runtime/capture"
	"github.com/wippyai/atom-runtime/inspect"
	"github.com/wippyai/atom-runtime/urid"
)

type options struct {
	typesFile   string
	port        string
	color       string
	frame       int
	maxDepth    int
	dumpTypes   bool
	interactive bool
	verbose     bool
}

func main() {
	var opts options
	pflag.StringVarP(&opts.typesFile, "types", "t", "", "YAML type table for raw buffer files")
	pflag.IntVarP(&opts.frame, "frame", "f", -1, "Only print frame `n`")
	pflag.StringVarP(&opts.port, "port", "p", "", "Only print frames of this port")
	pflag.BoolVar(&opts.dumpTypes, "dump-types", false, "Print the type table as YAML and exit")
	pflag.BoolVarP(&opts.interactive, "interactive", "i", false, "Browse frames in a terminal UI")
	pflag.StringVar(&opts.color, "color", "auto", "Color output: auto, always or never")
	pflag.IntVar(&opts.maxDepth, "max-depth", inspect.DefaultMaxDepth, "Container nesting limit")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "Log loading details to stderr")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: atomdump [flags] <capture.atomcap>")
		fmt.Fprintln(os.Stderr, "       atomdump -t types.yaml [flags] <buffer.bin>")
		fmt.Fprintln(os.Stderr)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	if opts.verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			capture.SetLogger(l)
			urid.SetLogger(l)
			defer func() { _ = l.Sync() }()
		}
	}

	if err := run(pflag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, opts options) error {
	file, err := load(path, opts.typesFile)
	if err != nil {
		return err
	}

	if opts.dumpTypes {
		return file.Types.WriteYAML(os.Stdout)
	}

	types, reg, err := file.Types()
	if err != nil {
		return err
	}
	frames := selectFrames(file, opts.frame, opts.port)
	if len(frames) == 0 {
		return fmt.Errorf("no frames match")
	}

	d := &dumper{
		file:     file,
		types:    types,
		reg:      reg,
		maxDepth: opts.maxDepth,
	}

	if opts.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		d.pal = newPalette(true)
		return runInteractive(d, frames, filepath.Base(path))
	}

	d.pal = newPalette(useColor(opts.color))
	for _, i := range frames {
		fmt.Print(d.frameHeader(i))
		fmt.Println()
		fmt.Print(d.render(i, ""))
	}
	return nil
}

// load reads a capture file, or a raw buffer when a type table is given.
func load(path, typesFile string) (*capture.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if bytes.HasPrefix(data, []byte(capture.Magic)) {
		return capture.Load(bytes.NewReader(data))
	}
	if typesFile == "" {
		return nil, fmt.Errorf("%s is not a capture file; pass --types to read it as a raw buffer", path)
	}

	tf, err := os.Open(typesFile)
	if err != nil {
		return nil, fmt.Errorf("open types: %w", err)
	}
	defer tf.Close()
	table, err := urid.LoadTable(tf)
	if err != nil {
		return nil, err
	}
	return &capture.File{
		Version: capture.Version,
		Types:   *table,
		Frames:  []capture.Frame{{Port: filepath.Base(path), Data: data}},
	}, nil
}

func selectFrames(file *capture.File, frame int, port string) []int {
	var out []int
	for i, fr := range file.Frames {
		if frame >= 0 && i != frame {
			continue
		}
		if port != "" && fr.Port != port {
			continue
		}
		out = append(out, i)
	}
	return out
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
}

type dumper struct {
	file     *capture.File
	types    *atom.Types
	reg      *urid.Map
	pal      palette
	maxDepth int
}

func (d *dumper) frameHeader(i int) string {
	fr := d.file.Frames[i]
	return d.pal.header.Render(fmt.Sprintf("frame %d", i)) +
		fmt.Sprintf(" cycle=%d port=%s bytes=%d", fr.Cycle, fr.Port, len(fr.Data))
}

// render formats frame i as an indented tree. A non-empty filter keeps only
// lines containing it, case-insensitively.
func (d *dumper) render(i int, filter string) string {
	r, err := d.file.Reader(i, d.types)
	if err != nil {
		return d.pal.err.Render(err.Error()) + "\n"
	}
	root, err := inspect.New(r).WithUnmapper(d.reg).WithMaxDepth(d.maxDepth).Root()
	if err != nil {
		return d.pal.err.Render(err.Error()) + "\n"
	}

	filter = strings.ToLower(filter)
	var b strings.Builder
	root.Visit(func(n *inspect.Node, depth int) bool {
		if filter != "" && !strings.Contains(strings.ToLower(n.Line()), filter) {
			return true
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(d.pal.line(n))
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
