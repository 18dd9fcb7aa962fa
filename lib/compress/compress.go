// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Algorithm identifies the compression algorithm applied to a
// serialized request. The algorithm travels in the envelope, alongside
// the message, never inside it. String names are protocol constants —
// changing them breaks interop with peers that emitted them.
type Algorithm uint8

const (
	// None indicates uncompressed data. Also the meaning of an empty
	// algorithm string in an envelope.
	None Algorithm = iota

	// LZ4 indicates LZ4 frame compression. Fast default for binary
	// payloads where decode throughput matters more than ratio.
	LZ4

	// BZ2 indicates bzip2 compression. Slow, high ratio; kept for
	// interop with senders that prefer minimal wire size.
	BZ2

	// LZMA indicates an LZMA-family xz stream.
	LZMA

	// ZLIB indicates a zlib (RFC 1950) stream.
	ZLIB

	// GZIP indicates a gzip (RFC 1952) stream.
	GZIP
)

// String returns the wire name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case BZ2:
		return "bz2"
	case LZMA:
		return "lzma"
	case ZLIB:
		return "zlib"
	case GZIP:
		return "gzip"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// UnsupportedError reports an algorithm name that no decoder is
// registered for. This is a configuration error: the sender and
// receiver disagree on the supported algorithm set, and retrying
// cannot fix it.
type UnsupportedError struct {
	// Name is the algorithm identifier as it appeared in the envelope.
	Name string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("compress: unsupported algorithm %q", e.Name)
}

// ParseAlgorithm parses an algorithm identifier from its envelope
// string form. The empty string and "none" both mean no compression.
// Names are matched case-insensitively since envelopes from older
// senders carry upper-case identifiers.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "bz2":
		return BZ2, nil
	case "lzma":
		return LZMA, nil
	case "zlib":
		return ZLIB, nil
	case "gzip":
		return GZIP, nil
	default:
		return 0, &UnsupportedError{Name: name}
	}
}

// Decompress decompresses data using the given algorithm. For None the
// input slice is returned unchanged (no copy). All algorithms use
// self-terminating stream formats, so no expected output size is
// needed. Malformed input surfaces the underlying codec error.
func Decompress(data []byte, algorithm Algorithm) ([]byte, error) {
	switch algorithm {
	case None:
		return data, nil
	case LZ4:
		return decompressLZ4(data)
	case BZ2:
		return decompressBZ2(data)
	case LZMA:
		return decompressLZMA(data)
	case ZLIB:
		return decompressZLIB(data)
	case GZIP:
		return decompressGZIP(data)
	default:
		return nil, &UnsupportedError{Name: algorithm.String()}
	}
}

// Compress compresses data using the given algorithm. For None the
// input slice is returned unchanged (no copy). This is the sender-side
// pairing of Decompress; the lazy request core itself only ever
// decompresses.
func Compress(data []byte, algorithm Algorithm) ([]byte, error) {
	switch algorithm {
	case None:
		return data, nil
	case LZ4:
		return compressLZ4(data)
	case BZ2:
		return compressBZ2(data)
	case LZMA:
		return compressLZMA(data)
	case ZLIB:
		return compressZLIB(data)
	case GZIP:
		return compressGZIP(data)
	default:
		return nil, &UnsupportedError{Name: algorithm.String()}
	}
}

// LZ4: frame format (not block), so the stream carries its own
// content size and checksum.

func compressLZ4(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := lz4.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return buffer.Bytes(), nil
}

func decompressLZ4(data []byte) ([]byte, error) {
	result, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	return result, nil
}

// BZ2: dsnet/compress provides both directions; the standard library
// bzip2 package is read-only.

func compressBZ2(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := bzip2.NewWriter(&buffer, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
	if err != nil {
		return nil, fmt.Errorf("bz2 compress: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("bz2 compress: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("bz2 compress: %w", err)
	}
	return buffer.Bytes(), nil
}

func decompressBZ2(data []byte) ([]byte, error) {
	reader, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("bz2 decompress: %w", err)
	}
	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("bz2 decompress: %w", err)
	}
	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("bz2 decompress: %w", err)
	}
	return result, nil
}

// LZMA: xz container stream, the format LZMA-family senders emit.

func compressLZMA(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := xz.NewWriter(&buffer)
	if err != nil {
		return nil, fmt.Errorf("lzma compress: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("lzma compress: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("lzma compress: %w", err)
	}
	return buffer.Bytes(), nil
}

func decompressLZMA(data []byte) ([]byte, error) {
	reader, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lzma decompress: %w", err)
	}
	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("lzma decompress: %w", err)
	}
	return result, nil
}

// ZLIB and GZIP: klauspost/compress drop-in replacements for the
// standard library packages.

func compressZLIB(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	return buffer.Bytes(), nil
}

func decompressZLIB(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	defer reader.Close()
	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	return result, nil
}

func compressGZIP(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compress: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gzip compress: %w", err)
	}
	return buffer.Bytes(), nil
}

func decompressGZIP(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}
	defer reader.Close()
	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}
	return result, nil
}
