// wireval is a small CLI around the wireval codec: encode, decode, and
// inspect subcommands operating on JSON-shaped input/output for human
// ergonomics, plus an optional compression pass. It is the simplest
// possible caller of the library, not a networking façade; that
// remains out of scope for this repository.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/wireval/wireval"
	"github.com/wireval/wireval/compress"
	"github.com/wireval/wireval/interop"
)

// fileConfig is the optional persisted-defaults file, loaded the way
// lib/config loads bureau.yaml: a single path from --config or the
// WIREVAL_CONFIG environment variable, no automatic discovery.
type fileConfig struct {
	MaxDepth         int `yaml:"max_depth"`
	MaxStringLength  int `yaml:"max_string_length"`
	MaxKeyframeCount int `yaml:"max_keyframe_count"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wireval: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected a subcommand: encode, decode, or inspect")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	switch args[0] {
	case "encode":
		return runEncode(logger, args[1:])
	case "decode":
		return runDecode(logger, args[1:])
	case "inspect":
		return runInspect(logger, args[1:])
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `wireval encodes and decodes the wireval binary value format.

Usage:
  wireval encode [flags]     read a JSON value from --in, write a wireval payload to --out
  wireval decode [flags]     read a wireval payload from --in, write a JSON value to --out
  wireval inspect [flags]    read a wireval payload from --in, print a human-readable summary

Flags:
  --in string          input path (default: stdin)
  --out string         output path (default: stdout)
  --config string      optional YAML config file (default: $WIREVAL_CONFIG)
  --compress string    compress/decompress with one of: none, rle, zstd, lz4 (default: none)
`)
}

func loadOptions(configPath string) ([]wireval.Option, error) {
	if configPath == "" {
		configPath = os.Getenv("WIREVAL_CONFIG")
	}
	if configPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", configPath, err)
	}
	var opts []wireval.Option
	if fc.MaxDepth > 0 {
		opts = append(opts, wireval.WithMaxDepth(fc.MaxDepth))
	}
	if fc.MaxStringLength > 0 {
		opts = append(opts, wireval.WithMaxStringLength(fc.MaxStringLength))
	}
	if fc.MaxKeyframeCount > 0 {
		opts = append(opts, wireval.WithMaxKeyframeCount(fc.MaxKeyframeCount))
	}
	return opts, nil
}

func compressorFor(name string) (compress.Compressor, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "rle":
		return compress.RunLength{}, nil
	case "zstd":
		return compress.Zstd{}, nil
	case "lz4":
		return compress.LZ4{}, nil
	default:
		return nil, fmt.Errorf("unknown --compress value %q", name)
	}
}

func openIn(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOut(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func runEncode(logger *slog.Logger, args []string) error {
	flagSet := pflag.NewFlagSet("wireval encode", pflag.ContinueOnError)
	inPath := flagSet.String("in", "", "input path (default: stdin)")
	outPath := flagSet.String("out", "", "output path (default: stdout)")
	configPath := flagSet.String("config", "", "optional YAML config file")
	compressName := flagSet.String("compress", "none", "compression: none, rle, zstd, lz4")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	opts, err := loadOptions(*configPath)
	if err != nil {
		return err
	}

	in, err := openIn(*inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	var jsonValue interface{}
	if err := json.Unmarshal(raw, &jsonValue); err != nil {
		return fmt.Errorf("parsing JSON input: %w", err)
	}

	payload, err := wireval.Encode(interop.FromPlain(jsonValue), opts...)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	c, err := compressorFor(*compressName)
	if err != nil {
		return err
	}
	if c != nil {
		payload, err = c.Compress(payload)
		if err != nil {
			return fmt.Errorf("compressing: %w", err)
		}
	}

	out, err := openOut(*outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(payload); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info("encoded", "bytes", len(payload), "compress", *compressName)
	return nil
}

func runDecode(logger *slog.Logger, args []string) error {
	flagSet := pflag.NewFlagSet("wireval decode", pflag.ContinueOnError)
	inPath := flagSet.String("in", "", "input path (default: stdin)")
	outPath := flagSet.String("out", "", "output path (default: stdout)")
	configPath := flagSet.String("config", "", "optional YAML config file")
	compressName := flagSet.String("compress", "none", "compression: none, rle, zstd, lz4")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	opts, err := loadOptions(*configPath)
	if err != nil {
		return err
	}

	in, err := openIn(*inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	payload, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	c, err := compressorFor(*compressName)
	if err != nil {
		return err
	}
	if c != nil {
		payload, err = c.Decompress(payload)
		if err != nil {
			return fmt.Errorf("decompressing: %w", err)
		}
	}

	v, err := wireval.Decode(payload, opts...)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	out, err := openOut(*outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	jsonBytes, err := interop.DumpJSON(v)
	if err != nil {
		return fmt.Errorf("rendering JSON: %w", err)
	}
	if _, err := out.Write(jsonBytes); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info("decoded", "bytes", len(payload))
	return nil
}

func runInspect(logger *slog.Logger, args []string) error {
	flagSet := pflag.NewFlagSet("wireval inspect", pflag.ContinueOnError)
	inPath := flagSet.String("in", "", "input path (default: stdin)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	in, err := openIn(*inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	payload, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	v, err := wireval.Decode(payload)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	fmt.Printf("kind: %s\n", v.Kind())
	logger.Info("inspected", "bytes", len(payload), "kind", v.Kind().String())
	return nil
}
