package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/tagtext"
	"pkt.systems/version"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	fetchTimeout = 30 * time.Second
)

var errUnknownCommand = errors.New("unknown command")

var commands = []string{
	"escape", "untag", "fix-old", "simplify", "validate",
	"replace", "tags", "match", "active", "spans",
}

func init() {
	version.SetDefaultModule("pkt.systems/tagtext")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	command     string
	output      string
	width       int
	raw         bool
	start       int
	end         int
	pos         int
	with        string
	content     bool
	strict      bool
	closeTags   bool
	mergeOnly   bool
	overlapOnly bool
	verbose     bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("tagtext", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.output, "output", "o", "", "Output file instead of stdout")
	flags.IntVarP(&opts.width, "width", "w", 0, "Wrap/truncate width for untag and spans (0 uses terminal width if available, -1 disables)")
	flags.BoolVar(&opts.raw, "raw", false, "untag: keep escaped '<' markers")
	flags.IntVar(&opts.start, "start", 0, "Range start offset (replace, tags)")
	flags.IntVar(&opts.end, "end", -1, "Range end offset (replace, tags); -1 means end of input")
	flags.IntVar(&opts.pos, "pos", 0, "Offset for match and active")
	flags.StringVar(&opts.with, "with", "", "replace: plain replacement text")
	flags.BoolVar(&opts.content, "content", false, "replace: offsets count content bytes instead of tagged bytes")
	flags.BoolVar(&opts.strict, "strict", false, "replace: reject reversed or out-of-range offsets")
	flags.BoolVar(&opts.closeTags, "close", false, "tags: list close tags instead of open tags")
	flags.BoolVar(&opts.mergeOnly, "merge-only", false, "simplify: only cancel opposite tags")
	flags.BoolVar(&opts.overlapOnly, "overlap-only", false, "simplify: only drop overlapping style tags")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: tagtext [flags] <command> [inputs...]\n")
		fmt.Fprintf(stderr, "\nCommands: %s\n", strings.Join(commands, ", "))
		fmt.Fprintln(stderr, "\nIf no input is provided, tagged text is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return exitUsage
	}
	opts.command = rest[0]
	logger := newLogger(stderr, opts.verbose)

	if !knownCommand(opts.command) {
		fmt.Fprintf(stderr, "%v %q\n\n", errUnknownCommand, opts.command)
		flags.Usage()
		return exitUsage
	}

	ctx := context.Background()
	src, err := readInputs(ctx, rest[1:], stdin)
	if err != nil {
		logFailure(ctx, logger, "read input", err)
		return exitFailure
	}
	if err := tagtext.ValidateInput(src); err != nil {
		logFailure(ctx, logger, "check input", err)
		return exitFailure
	}
	logger.Debug("input loaded", "command", opts.command, "bytes", len(src), "sources", len(rest)-1)

	w, closeOut, err := resolveOutput(opts.output, stdout)
	if err != nil {
		logFailure(ctx, logger, "open output", err)
		return exitFailure
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	opts.width = resolveWidth(opts.width, w)

	out, err := execute(opts, string(src))
	if err != nil {
		logFailure(ctx, logger, opts.command, err)
		return exitFailure
	}
	if _, err := io.WriteString(w, out); err != nil {
		logFailure(ctx, logger, "write output", err)
		return exitFailure
	}
	return exitOK
}

func knownCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

func execute(opts options, src string) (string, error) {
	switch opts.command {
	case "escape":
		return tagtext.Escape(src), nil
	case "untag":
		var b strings.Builder
		err := tagtext.UntagStream(tagtext.UntagStreamRequest{
			Reader:      strings.NewReader(src),
			Writer:      &b,
			KeepEscapes: opts.raw,
		})
		if err != nil {
			return "", err
		}
		out := b.String()
		if opts.width > 0 {
			out = wordwrap.String(out, opts.width)
		}
		return out, nil
	case "fix-old":
		return tagtext.FixOldTags(src), nil
	case "simplify":
		switch {
		case opts.mergeOnly && opts.overlapOnly:
			return "", fmt.Errorf("simplify: --merge-only and --overlap-only are exclusive")
		case opts.mergeOnly:
			return tagtext.SimplifyTaggedMerge(src), nil
		case opts.overlapOnly:
			return tagtext.SimplifyTaggedOverlap(src), nil
		}
		return tagtext.SimplifyTagged(src), nil
	case "validate":
		if err := tagtext.Validate(src); err != nil {
			return "", err
		}
		return "ok\n", nil
	case "replace":
		end := opts.end
		if end < 0 {
			end = len(src)
			if opts.content {
				end = len(tagtext.UntagNoEscape(src))
			}
		}
		return tagtext.Replace(tagtext.ReplaceRequest{
			Input:       src,
			Start:       opts.start,
			End:         end,
			Replacement: opts.with,
			Options: []tagtext.ReplaceOption{
				tagtext.WithContentOffsets(opts.content),
				tagtext.WithStrictBounds(opts.strict),
			},
		})
	case "tags":
		end := opts.end
		if end < 0 {
			end = len(src)
		}
		return tagtext.GetTags(src, opts.start, end, opts.closeTags) + "\n", nil
	case "match":
		return strconv.Itoa(tagtext.MatchCloseTag(src, opts.pos)) + "\n", nil
	case "active":
		return strings.Join(tagtext.ActiveTags(src, opts.pos), " ") + "\n", nil
	case "spans":
		return formatSpans(src, opts.width)
	}
	return "", fmt.Errorf("%w %q", errUnknownCommand, opts.command)
}

func formatSpans(src string, width int) (string, error) {
	spans, err := tagtext.Parse(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, span := range spans {
		prefix := fmt.Sprintf("%d-%d\t%s\t", span.Open, span.Close, span.Name)
		text := strings.ReplaceAll(tagtext.Untag(src[span.ContentStart:span.ContentEnd]), "\n", " ")
		if width > 0 {
			limit := width - len(prefix)
			if limit < 1 {
				limit = 1
			}
			text = truncate.StringWithTail(text, uint(limit), "…")
		}
		b.WriteString(prefix)
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func logFailure(ctx context.Context, logger *slog.Logger, op string, err error) {
	attrs := []slog.Attr{slog.String("op", op), slog.String("error", err.Error())}
	attrs = append(attrs, goerrors.ToSlogAttributes(err)...)
	logger.LogAttrs(ctx, slog.LevelError, "tagtext failed", attrs...)
}

func resolveWidth(width int, w io.Writer) int {
	if width != 0 {
		if width < 0 {
			return 0
		}
		return width
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
		return tw
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if tw, err := strconv.Atoi(value); err == nil && tw > 0 {
			return tw
		}
	}
	return 0
}

func readInputs(ctx context.Context, args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(stdin)
	}
	var buf bytes.Buffer
	for _, raw := range args {
		if err := readSource(ctx, raw, &buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func readSource(ctx context.Context, raw string, dst *bytes.Buffer) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return fmt.Errorf("stdin cannot be mixed with other inputs")
	}
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return fetchURL(ctx, raw, dst)
		case "file":
			path = u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
		}
	}
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return err
	}
	dst.Write(data)
	return nil
}

func fetchURL(ctx context.Context, raw string, dst *bytes.Buffer) error {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	body, err := tagtext.Fetch(ctx, tagtext.FetchRequest{URL: raw})
	if err != nil {
		return err
	}
	dst.Write(body)
	return nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	if dir := filepath.Dir(clean); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
