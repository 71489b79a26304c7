package staticpress

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// compressors maps a Compress method to the suffix of the sibling file it
// writes.
var compressors = map[string]struct {
	ext    string
	encode func([]byte) ([]byte, error)
}{
	"gzip": {".gz", encodeGzip},
	"zstd": {".zst", encodeZstd},
}

var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		panic("staticpress: zstd encoder initialization failed: " + err.Error())
	}
}

func encodeGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeZstd(data []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(data, nil), nil
}

// siblingExts lists every suffix a precompressed sibling may carry.
func siblingExts() []string {
	return []string{".gz", ".zst"}
}

// compressible reports whether a file is text worth precompressing.
// Images and fonts are already compressed.
func compressible(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".css", ".js", ".xml", ".txt", ".json", ".svg", ".map", ".md":
		return true
	}
	return false
}
