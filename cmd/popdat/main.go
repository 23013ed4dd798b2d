package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FluffyQuack/POPtool/cmd/internal/globset"
	"github.com/FluffyQuack/POPtool/popdat"
)

func main() {
	all := flag.Bool("all", false, "extract every entry in the archive")
	disasmOut := flag.String("x", "", "disassemble the archive's SEQUENCE container to PATH")
	asmIn := flag.String("r", "", "assemble PATH (a disassembled script) into a new SEQUENCE container written to -out")
	pop1 := flag.Bool("POP1", false, "the archive uses the v1 (flat footer) container layout")
	pop2 := flag.Bool("POP2", false, "the archive uses the v2 (typed footer) container layout")
	in := flag.String("in", "", "input .DAT archive")
	out := flag.String("out", "", "output directory (-all) or output file (-r)")
	skip := flag.String("skip", "", "comma separated list of glob expressions; matching output paths are not written")
	format := flag.String("fmt", "png", "image sink: png or bmp")
	dumpText := flag.Bool("dump-text", false, "also emit a CP437-to-UTF-8 sibling for TEXT/TEXT_ALT entries")
	flipY := flag.Bool("flip-y", false, "flip decoded images vertically")
	frames := flag.String("frames", "", "frame-table binary; writes FrameArray.txt alongside it")
	flag.Parse()

	if *frames != "" {
		if err := writeFrameArray(*frames); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := run(modeFlags{all: *all, disasmOut: *disasmOut, asmIn: *asmIn}, *pop1, *pop2, *in, *out, *skip, *format, *dumpText, *flipY); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}
}

type modeFlags struct {
	all       bool
	disasmOut string
	asmIn     string
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: popdat [-all | -x PATH | -r PATH] [-POP1 | -POP2] -in FILE [-out PATH] [-skip GLOBS] [-fmt png|bmp] [-dump-text] [-flip-y] [-frames FILE]")
}

// writeFrameArray renders a separately supplied frame-table binary
// (records of i16 image, i16 sword, i8 dx, i8 dy, u8 flags) as
// FrameArray.txt next to the input file.
func writeFrameArray(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	records, err := popdat.ParseFrameTable(data)
	if err != nil {
		return err
	}
	outPath := filepath.Join(filepath.Dir(path), "FrameArray.txt")
	return os.WriteFile(outPath, []byte(popdat.FormatFrameTable(records)), 0o644)
}

func run(mode modeFlags, pop1, pop2 bool, in, out, skip, format string, dumpText, flipY bool) error {
	n := 0
	if mode.all {
		n++
	}
	if mode.disasmOut != "" {
		n++
	}
	if mode.asmIn != "" {
		n++
	}
	if n != 1 {
		return fmt.Errorf("exactly one of -all, -x, -r is required")
	}
	if pop1 == pop2 {
		return fmt.Errorf("exactly one of -POP1, -POP2 is required")
	}
	if in == "" {
		return fmt.Errorf("-in is required")
	}

	gen := popdat.POP1
	if pop2 {
		gen = popdat.POP2
	}

	var imgFormat popdat.ImageFormat
	switch format {
	case "png", "":
		imgFormat = popdat.FormatPNG
	case "bmp":
		imgFormat = popdat.FormatBMP
	default:
		return fmt.Errorf("unknown -fmt %q, want png or bmp", format)
	}

	a, err := popdat.OpenArchive(in, gen)
	if err != nil {
		return err
	}
	defer a.Close()

	switch {
	case mode.all:
		if out == "" {
			return fmt.Errorf("-out is required with -all")
		}
		pal, warnings, err := a.FindPalette()
		popdat.LogWarnings(popdat.DefaultStatus, warnings)
		if err != nil {
			return err
		}
		return a.Extract(popdat.ExtractOptions{
			BaseDir:  out,
			Format:   imgFormat,
			FlipY:    flipY,
			DumpText: dumpText,
			Skip:     newSkipMatcher(skip),
			Status:   popdat.DefaultStatus,
			Palette:  pal,
		})

	case mode.disasmOut != "":
		anims, warnings, err := popdat.ParseSequenceContainer(a.Container)
		popdat.LogWarnings(popdat.DefaultStatus, warnings)
		if err != nil {
			return err
		}
		text, err := popdat.Disassemble(anims)
		if err != nil {
			return err
		}
		return os.WriteFile(mode.disasmOut, []byte(text), 0o644)

	case mode.asmIn != "":
		if out == "" {
			return fmt.Errorf("-out is required with -r")
		}
		src, err := os.ReadFile(mode.asmIn)
		if err != nil {
			return err
		}
		anims, warnings, err := popdat.ParseScript(string(src))
		popdat.LogWarnings(popdat.DefaultStatus, warnings)
		if err != nil {
			return err
		}
		rewritten, err := popdat.RewriteSequenceContainer(anims)
		if err != nil {
			return err
		}
		return os.WriteFile(out, rewritten, 0o644)
	}

	return nil
}

// newSkipMatcher parses the -skip flag's comma-separated glob list into
// a globset.Matcher and returns a predicate suitable for
// popdat.ExtractOptions.Skip.
func newSkipMatcher(patterns string) func(string) bool {
	if patterns == "" {
		return nil
	}
	var globs []string
	for _, g := range strings.Split(patterns, ",") {
		globs = append(globs, strings.TrimSpace(g))
	}
	m := globset.New(globs)
	if m.Empty() {
		return nil
	}
	return m.Match
}
