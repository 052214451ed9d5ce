package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/keyfind/internal/jsonvalue"
	"github.com/jacoelho/keyfind/internal/keypath"
	"github.com/jacoelho/keyfind/internal/keyset"
	"github.com/jacoelho/keyfind/internal/report"
	"github.com/jacoelho/keyfind/internal/scope"
)

var (
	ErrNoArguments          = errors.New("no arguments provided")
	ErrHelp                 = errors.New("help requested")
	ErrMissingFile          = errors.New("please specify a JSON file to search")
	ErrMissingKeys          = errors.New("please provide target keys with --keys, e.g. --keys event_name,msgId")
	ErrOptionAfterFile      = errors.New("options must come before files")
	ErrInvalidFormat        = errors.New("--format must be one of: text, json, yaml")
	ErrInvalidInputFormat   = errors.New("--input-format must be one of: auto, json, yaml")
	ErrInvalidPathStyle     = errors.New("--path-style must be one of: slash, jsonpath")
	ErrInvalidMaxDepth      = errors.New("--max-depth must be positive")
	ErrInvalidLogFormat     = errors.New("--log-format must be one of: text, json")
	ErrInvalidScopeArgument = errors.New("--scope is not a valid JSONPath expression")
)

// InputFormat selects the document decoder.
type InputFormat string

const (
	InputAuto InputFormat = "auto"
	InputJSON InputFormat = "json"
	InputYAML InputFormat = "yaml"
)

// Config defines CLI options for a search.
type Config struct {
	Files       []string
	Keys        keyset.Set
	Format      report.Format
	InputFormat InputFormat
	PathStyle   keypath.Style
	Scope       *scope.Selector
	MaxDepth    int
	RateLimit   float64 // files per second (0 = unlimited)
	LogLevel    string
	LogFormat   string
}

// Parse parses and validates CLI arguments.
func Parse(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var keys string
	fs.StringVar(&keys, "keys", "", "Comma-separated key names to search for")
	fs.StringVar(&keys, "k", "", "Shorthand for --keys")
	format := fs.String("format", string(report.FormatText), "Report format: text, json or yaml")
	inputFormat := fs.String("input-format", string(InputAuto), "Document format: auto, json or yaml")
	pathStyle := fs.String("path-style", string(keypath.StyleSlash), "Path rendering: slash or jsonpath")
	scopeExpr := fs.String("scope", "", "JSONPath expression selecting the subtrees to search")
	maxDepth := fs.Int("max-depth", jsonvalue.DefaultMaxDepth, "Maximum container nesting depth")
	rateLimit := fs.Float64("rate-limit", 0, "Files per second (0 for unlimited)")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "text", "Log format: text or json")
	debug := fs.Bool("debug", false, "Shorthand for --log-level debug")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	files := fs.Args()
	if len(files) == 0 {
		return nil, ErrMissingFile
	}

	if opt, ok := optionAfterFile(args, files); ok {
		return nil, fmt.Errorf("%w, got %s after %s", ErrOptionAfterFile, opt, files[0])
	}

	if strings.TrimSpace(keys) == "" {
		return nil, ErrMissingKeys
	}

	parsedFormat, ok := report.ParseFormat(*format)
	if !ok {
		return nil, fmt.Errorf("%w, got: %s", ErrInvalidFormat, *format)
	}

	parsedInput, err := parseInputFormat(*inputFormat)
	if err != nil {
		return nil, err
	}

	parsedStyle, ok := keypath.ParseStyle(*pathStyle)
	if !ok {
		return nil, fmt.Errorf("%w, got: %s", ErrInvalidPathStyle, *pathStyle)
	}

	if *maxDepth <= 0 {
		return nil, fmt.Errorf("%w, got: %d", ErrInvalidMaxDepth, *maxDepth)
	}

	if *logFormat != "text" && *logFormat != "json" {
		return nil, fmt.Errorf("%w, got: %s", ErrInvalidLogFormat, *logFormat)
	}

	var selector *scope.Selector
	if *scopeExpr != "" {
		selector, err = scope.Compile(*scopeExpr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScopeArgument, err)
		}
	}

	level := *logLevel
	if *debug {
		level = "debug"
	}

	return &Config{
		Files:       files,
		Keys:        keyset.Parse(keys),
		Format:      parsedFormat,
		InputFormat: parsedInput,
		PathStyle:   parsedStyle,
		Scope:       selector,
		MaxDepth:    *maxDepth,
		RateLimit:   *rateLimit,
		LogLevel:    level,
		LogFormat:   *logFormat,
	}, nil
}

// optionAfterFile reports the first positional argument that looks like an
// option. The flag package stops at the first file, so anything after it is
// left unparsed. Arguments after an explicit "--" are always files.
func optionAfterFile(args, files []string) (string, bool) {
	if i := len(args) - len(files) - 1; i > 0 && args[i] == "--" {
		return "", false
	}
	for _, arg := range files {
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			return arg, true
		}
	}
	return "", false
}

func parseInputFormat(input string) (InputFormat, error) {
	switch InputFormat(strings.ToLower(strings.TrimSpace(input))) {
	case "", InputAuto:
		return InputAuto, nil
	case InputJSON:
		return InputJSON, nil
	case InputYAML, "yml":
		return InputYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidInputFormat, input)
	}
}

// Usage returns command usage text.
func Usage() string {
	return `keyfind - report the path and value of every occurrence of the given keys in a JSON document

Usage:
  keyfind --keys LIST [options] <file> [file...]

Options must come before the files; use -- to search a file whose name
starts with a dash.

Options:
  -k, --keys LIST         Comma-separated key names (required), e.g. event_name,msgId
  --format FORMAT         Report format: text, json or yaml (default: text)
  --input-format FORMAT   Document format: auto, json or yaml (default: auto, by extension)
  --path-style STYLE      Path rendering: slash (a[0]/b) or jsonpath ($['a'][0]['b'])
  --scope EXPR            Only search the subtrees selected by a JSONPath expression
  --max-depth N           Maximum container nesting depth (default: 10000)
  --rate-limit N          Files per second when searching several files (0 for unlimited)
  --log-level LEVEL       Log level: debug, info, warn, error (default: warn)
  --log-format FORMAT     Log format: text or json (default: text)
  --debug                 Shorthand for --log-level debug
  -h, --help              Show this help message

Examples:
  keyfind --keys event_name,msgId,triggerType,timestamp events.json
  keyfind -k id --scope '$.items[*]' --format json catalog.json
  keyfind -k name config.yaml other.json`
}
