// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// jina-inspect decodes a serialized request from disk and prints what
// is inside: a summary, a single field, or the raw CBOR diagnostic
// notation. It can also extend the request's queryset from a JSONC
// preset file and write the re-encoded bytes back out.
//
// The compression algorithm comes from an envelope sidecar file
// (--envelope, YAML) or directly from --algorithm. Without either, the
// payload is assumed uncompressed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/serguk89/jina/lib/codec"
	"github.com/serguk89/jina/lib/compress"
	"github.com/serguk89/jina/lib/config"
	"github.com/serguk89/jina/lib/querylang"
	"github.com/serguk89/jina/lib/schema"
	"github.com/serguk89/jina/lib/version"
	"github.com/serguk89/jina/request"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdout io.Writer) error {
	var (
		envelopePath string
		algorithm    string
		configPath   string
		fieldName    string
		querysetPath string
		outPath      string
		diagnostic   bool
		verbose      bool
		showVersion  bool
	)

	flagSet := pflag.NewFlagSet("jina-inspect", pflag.ContinueOnError)
	flagSet.StringVar(&envelopePath, "envelope", "", "YAML envelope sidecar describing the payload")
	flagSet.StringVar(&algorithm, "algorithm", "", "compression algorithm override (none, lz4, bz2, lzma, zlib, gzip)")
	flagSet.StringVar(&configPath, "config", "", "tool config file (default: $"+config.EnvConfigPath+")")
	flagSet.StringVar(&fieldName, "field", "", "print a single field by name instead of the summary")
	flagSet.StringVar(&querysetPath, "queryset", "", "JSONC preset file with fragments to append")
	flagSet.StringVar(&outPath, "out", "", "write the request's serialized bytes to this file")
	flagSet.BoolVar(&diagnostic, "diag", false, "print CBOR diagnostic notation of the decoded payload")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(argv); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "jina-inspect %s\n", version.Info())
		return nil
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	args := flagSet.Args()
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one request file argument")
	}
	requestPath := args[0]

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(requestPath)
	if err != nil {
		return fmt.Errorf("reading request file: %w", err)
	}

	envelope, err := loadEnvelope(envelopePath, algorithm)
	if err != nil {
		return err
	}

	algo, err := compress.ParseAlgorithm(envelope.CompressionAlgorithm())
	if err != nil {
		return err
	}
	logger.Debug("decoding request",
		"file", requestPath,
		"bytes", len(raw),
		"algorithm", algo.String())

	plain, err := compress.Decompress(raw, algo)
	if err != nil {
		return fmt.Errorf("decompressing payload: %w", err)
	}
	if max := cfg.Wire.MaxDecodedBytes; max > 0 && len(plain) > max {
		return fmt.Errorf("decoded payload is %d bytes, config caps it at %d", len(plain), max)
	}
	logger.Debug("decompressed payload", "bytes", len(plain))

	if diagnostic {
		notation, err := codec.Diagnose(plain)
		if err != nil {
			return fmt.Errorf("diagnosing payload: %w", err)
		}
		fmt.Fprintln(stdout, notation)
		return nil
	}

	// The payload is already decompressed, so the request is built
	// without an envelope.
	req := request.FromBytes(plain, nil)

	if querysetPath != "" {
		fragments, err := querylang.ParseFile(querysetPath)
		if err != nil {
			return err
		}
		items := make([]any, len(fragments))
		for i, fragment := range fragments {
			items[i] = fragment
		}
		if err := req.ExtendQueryset(items...); err != nil {
			return err
		}
		logger.Debug("extended queryset", "fragments", len(fragments))
	}

	if fieldName != "" {
		value, err := req.Get(fieldName)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%v\n", value)
	} else {
		record, err := req.Materialize()
		if err != nil {
			return err
		}
		printSummary(stdout, record, envelope)
	}

	if outPath != "" {
		data, err := req.Serialize()
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		logger.Debug("wrote request", "file", outPath, "bytes", len(data))
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

// loadEnvelope builds the envelope from the sidecar file, then lets
// --algorithm override its compression identifier.
func loadEnvelope(path, algorithmOverride string) (*schema.Envelope, error) {
	envelope := &schema.Envelope{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading envelope file: %w", err)
		}
		if err := yaml.Unmarshal(data, envelope); err != nil {
			return nil, fmt.Errorf("parsing envelope %s: %w", path, err)
		}
	}
	if algorithmOverride != "" {
		envelope.Compression.Algorithm = algorithmOverride
	}
	return envelope, nil
}

func printSummary(w io.Writer, record *schema.Request, envelope *schema.Envelope) {
	fmt.Fprintf(w, "request_id:  %s\n", record.RequestID)
	fmt.Fprintf(w, "body:        %s\n", bodyName(record.WhichBody()))
	if record.Status != nil {
		fmt.Fprintf(w, "status:      %d %s\n", record.Status.Code, record.Status.Description)
	}
	if set := docSet(record); set != nil {
		fmt.Fprintf(w, "docs:        %d\n", len(set.Docs))
		fmt.Fprintf(w, "groundtruths: %d\n", len(set.Groundtruths))
	}
	if record.Control != nil && record.Control.Command != "" {
		fmt.Fprintf(w, "command:     %s\n", record.Control.Command)
	}
	if len(record.Queryset) > 0 {
		fmt.Fprintf(w, "queryset:\n")
		for _, fragment := range record.Queryset {
			state := ""
			if fragment.Disabled {
				state = " (disabled)"
			}
			fmt.Fprintf(w, "  - %s priority=%d%s\n", fragment.Name, fragment.Priority, state)
		}
	}
	if sender := envelope.SenderID; sender != "" {
		fmt.Fprintf(w, "sender:      %s\n", sender)
	}
	for _, route := range envelope.Routes {
		fmt.Fprintf(w, "route:       %s (%s -> %s)\n", route.Pod, route.StartTime, route.EndTime)
	}
}

func bodyName(kind schema.BodyKind) string {
	if kind == schema.BodyNone {
		return "(none)"
	}
	return string(kind)
}

// docSet returns the active variant's document collections for the
// summary, or nil when the request has no body.
func docSet(record *schema.Request) *schema.DocSet {
	switch record.WhichBody() {
	case schema.BodyIndex:
		return &record.Index.DocSet
	case schema.BodySearch:
		return &record.Search.DocSet
	case schema.BodyTrain:
		return &record.Train.DocSet
	case schema.BodyControl:
		return &record.Control.DocSet
	default:
		return nil
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `jina-inspect — decode and inspect a serialized pipeline request.

Usage:
  jina-inspect [flags] <request-file>

Examples:
  jina-inspect --envelope msg.envelope.yaml msg.bin
  jina-inspect --algorithm gzip --field request_id msg.bin
  jina-inspect --algorithm lz4 --diag msg.bin
  jina-inspect --queryset presets/search.jsonc --out msg.out.bin msg.bin

Flags:
%s`, flagSet.FlagUsages())
}
