// Package cli implements the command-line glue that drives the
// perfect-hash library: keys-file parsing, template-file reading, output
// naming, and flag wiring. None of this is part of the core algorithm
// (spec §1 scopes argument parsing, I/O, and progress logging out of the
// core); it exists only to exercise keymap, hashfamily, generator, and
// codegen from a real invocation.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ilanschnell/perfect-hash/codegen"
	"github.com/ilanschnell/perfect-hash/format"
	"github.com/ilanschnell/perfect-hash/generator"
	"github.com/ilanschnell/perfect-hash/hashfamily"
	"github.com/ilanschnell/perfect-hash/keymap"
	"github.com/ilanschnell/perfect-hash/logging"
)

// Exit codes, per spec §6: "0 on success; non-zero on parse error, I/O
// error, or TooManyIterations".
const (
	ExitSuccess           = 0
	ExitInvalidInvocation = 2
	ExitIOError           = 3
	ExitMalformedInput    = 4
	ExitTooManyIterations = 5
	ExitInternalError     = 6
)

// InvocationError pairs a user-facing message with the exit code it
// should produce, mirroring the teacher's structured-exit-code boundary.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invocationErrorf(code int, format string, args ...interface{}) error {
	return &InvocationError{ExitCode: code, Message: fmt.Sprintf(format, args...)}
}

// Invocation is the fully parsed, canonical description of one CLI run.
type Invocation struct {
	KeysFile     string
	TemplateFile string // "" when none was given

	Delimiter string
	Indent    int
	Width     int
	Comment   string
	SplitBy   string
	KeyCol    int
	Trials    int
	HFT       int // 1 (StringSaltFamily) or 2 (IntVectorFamily)

	Output  string // explicit --output value, "" if omitted
	Execute bool
	Verbose bool
	Test    bool
}

// ParseInvocation parses args (excluding argv[0]) into a canonical
// Invocation, applying the defaults from spec §6.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("perfect-hash", flag.ContinueOnError)
	var buf strings.Builder
	fs.SetOutput(&buf)

	inv := Invocation{}
	fs.StringVar(&inv.Delimiter, "delimiter", ", ", "delimiter between formatted values")
	fs.IntVar(&inv.Indent, "indent", 4, "indent width for wrapped lines")
	fs.IntVar(&inv.Width, "width", 76, "maximum line width before wrapping")
	fs.StringVar(&inv.Comment, "comment", "#", "comment marker in the keys file")
	fs.StringVar(&inv.SplitBy, "splitby", ",", "column separator in the keys file")
	fs.IntVar(&inv.KeyCol, "keycol", 1, "1-indexed key column in the keys file")
	fs.IntVar(&inv.Trials, "trials", 5, "failed trials at a given N before growing N")
	fs.IntVar(&inv.HFT, "hft", 2, "hash family type: 1 (string-salt) or 2 (int-salt-vector)")
	fs.StringVar(&inv.Output, "output", "", "output file, 'std', or 'no'; default derives from the template path")
	fs.StringVar(&inv.Output, "o", "", "shorthand for --output")
	fs.BoolVar(&inv.Execute, "execute", false, "accepted, but emitted code is not run; with -v a note says the self-check was skipped")
	fs.BoolVar(&inv.Execute, "e", false, "shorthand for --execute")
	fs.BoolVar(&inv.Verbose, "verbose", false, "narrate progress")
	fs.BoolVar(&inv.Verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&inv.Test, "test", false, "run the internal self-test suite instead of generating code")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invocationErrorf(ExitInvalidInvocation, "%s", buf.String())
	}

	if inv.Test {
		return inv, nil
	}

	rest := fs.Args()
	if len(rest) < 1 {
		return Invocation{}, invocationErrorf(ExitInvalidInvocation, "usage: perfect-hash [options] KEYS_FILE [TEMPLATE_FILE]")
	}
	if len(rest) > 2 {
		return Invocation{}, invocationErrorf(ExitInvalidInvocation, "unexpected extra arguments: %q", strings.Join(rest[2:], " "))
	}
	inv.KeysFile = rest[0]
	if len(rest) == 2 {
		inv.TemplateFile = rest[1]
	}
	if inv.HFT != 1 && inv.HFT != 2 {
		return Invocation{}, invocationErrorf(ExitInvalidInvocation, "--hft must be 1 or 2, got %d", inv.HFT)
	}
	if inv.KeyCol < 1 {
		return Invocation{}, invocationErrorf(ExitInvalidInvocation, "--keycol must be >= 1, got %d", inv.KeyCol)
	}
	if inv.Trials < 1 {
		return Invocation{}, invocationErrorf(ExitInvalidInvocation, "--trials must be >= 1, got %d", inv.Trials)
	}

	return inv, nil
}

// family resolves the --hft flag to a concrete hashfamily.Family.
func (inv Invocation) family() hashfamily.Family {
	if inv.HFT == 1 {
		return hashfamily.StringSaltFamily{}
	}
	return hashfamily.IntVectorFamily{}
}

// Run executes one CLI invocation end to end: read the keys file, read
// the optional template, drive codegen.GenerateCode, and write the
// result per the --output naming rule. It returns the process exit code
// and any error that produced it.
func Run(inv Invocation) (int, error) {
	if inv.Test {
		if err := selfTest(); err != nil {
			return ExitInternalError, err
		}
		fmt.Println("self-test OK")
		return ExitSuccess, nil
	}

	logger := logging.Logger(logging.NopLogger{})
	if inv.Verbose {
		logger = logging.NewStdLogger()
	}

	pairs, err := readKeysFile(inv.KeysFile, inv.Comment, inv.SplitBy, inv.KeyCol)
	if err != nil {
		return exitCodeFor(err), err
	}

	var template string
	if inv.TemplateFile != "" {
		b, err := os.ReadFile(inv.TemplateFile)
		if err != nil {
			return ExitIOError, invocationErrorf(ExitIOError, "could not read template %q: %v", inv.TemplateFile, err)
		}
		template = string(b)
	}

	code, err := codegen.GenerateCode(pairs, inv.family(), template,
		codegen.WithGeneratorOptions(generator.WithTrialsBeforeGrow(inv.Trials)),
		codegen.WithFormatOptions(format.Options{Width: inv.Width, Indent: inv.Indent, Delimiter: inv.Delimiter}),
		codegen.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, generator.ErrTooManyIterations) {
			return ExitTooManyIterations, err
		}
		return ExitInternalError, err
	}

	if inv.Execute {
		logger.Printf("perfect-hash: --execute requested, but running emitted code through an " +
			"external interpreter is outside this module's scope; skipping self-check")
	}

	return writeOutput(inv, code)
}

// writeOutput writes code to the destination named by inv.Output, or (if
// inv.Output is empty) derives a path from inv.TemplateFile by replacing
// the substring "tmpl" with "code", or to stdout if no template was
// given at all (spec §6 "Output naming").
func writeOutput(inv Invocation, code string) (int, error) {
	dest := inv.Output
	if dest == "" {
		if inv.TemplateFile == "" {
			dest = "std"
		} else {
			dest = strings.Replace(inv.TemplateFile, "tmpl", "code", 1)
		}
	}

	switch dest {
	case "no":
		return ExitSuccess, nil
	case "std":
		if _, err := io.WriteString(os.Stdout, code); err != nil {
			return ExitIOError, invocationErrorf(ExitIOError, "writing to stdout: %v", err)
		}
		return ExitSuccess, nil
	default:
		if err := os.WriteFile(dest, []byte(code), 0o644); err != nil {
			return ExitIOError, invocationErrorf(ExitIOError, "writing %q: %v", dest, err)
		}
		return ExitSuccess, nil
	}
}

// readKeysFile implements spec §6's keys-file format: one record per
// line, columns separated by splitby, comments stripped (whole-line or
// trailing), blank lines ignored, the key taken from the 1-indexed
// keycol column, desired hashes assigned implicitly in input order.
func readKeysFile(path, comment, splitby string, keycol int) ([]keymap.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, invocationErrorf(ExitIOError, "could not open %q for reading: %v", path, err)
	}

	var pairs []keymap.Pair
	hashval := 0
	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, comment) {
			continue
		}
		if i := strings.Index(line, comment); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		cols := strings.Split(line, splitby)
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if keycol > len(cols) {
			return nil, invocationErrorf(ExitMalformedInput, "%s:%d: cannot read key, not enough columns", path, lineNo+1)
		}

		pairs = append(pairs, keymap.Pair{Key: cols[keycol-1], Hash: hashval})
		hashval++
	}

	if len(pairs) == 0 {
		return nil, invocationErrorf(ExitMalformedInput, "no keys found in %q", path)
	}
	return pairs, nil
}

func exitCodeFor(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		return invErr.ExitCode
	}
	return ExitInternalError
}

// selfTest runs a small, fast smoke suite over the public API, standing
// in for spec §6's --test flag ("run internal self-test suite").
func selfTest() error {
	cases := []struct {
		keys   []string
		family hashfamily.Family
		seed   int64
	}{
		{[]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}, hashfamily.IntVectorFamily{}, 1},
		{[]string{"Ilan", "Arvin"}, hashfamily.StringSaltFamily{}, 2},
		{alphabet(), hashfamily.IntVectorFamily{}, 3},
	}

	for _, c := range cases {
		km, _, err := keymap.FromKeys(c.keys)
		if err != nil {
			return err
		}
		res, err := generator.Generate(km, c.family, generator.WithSeed(c.seed))
		if err != nil {
			return fmt.Errorf("self-test: %w", err)
		}
		n := len(res.G)
		for _, p := range km.Pairs() {
			got := mod(res.G[res.F1.Evaluate(p.Key)]+res.G[res.F2.Evaluate(p.Key)], n)
			if got != p.Hash {
				return fmt.Errorf("self-test: key %q hashes to %d, want %d", p.Key, got, p.Hash)
			}
		}
	}
	return nil
}

func alphabet() []string {
	out := make([]string, 26)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}
