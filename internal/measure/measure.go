// Package measure reports how much a generated dictionary helps raw
// DEFLATE compression of sample payloads.
//
// The word list is meant to be passed as a preset dictionary to a raw
// DEFLATE stream at the best compression level. Only the final 32 KiB of a
// preset dictionary are reachable by back-references, which is why the
// ranker puts the most frequent names last.
package measure

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
)

// WindowSize is the DEFLATE sliding window; dictionary bytes before the
// last WindowSize are never referenced.
const WindowSize = 32 * 1024

// Report describes one sample compressed with and without the dictionary.
type Report struct {
	Sample   string `json:"sample"`
	Raw      int    `json:"raw"`
	Plain    int    `json:"plain"`
	WithDict int    `json:"withDict"`
}

// Saved is the number of bytes the dictionary saves on this sample.
// It is negative when the dictionary makes things worse.
func (r Report) Saved() int {
	return r.Plain - r.WithDict
}

// Ratio is WithDict as a fraction of Plain. A zero Plain size yields 1.
func (r Report) Ratio() float64 {
	if r.Plain == 0 {
		return 1
	}
	return float64(r.WithDict) / float64(r.Plain)
}

// Usable returns the part of dict that DEFLATE can reference and whether
// anything was cut off.
func Usable(dict []byte) ([]byte, bool) {
	if len(dict) <= WindowSize {
		return dict, false
	}
	return dict[len(dict)-WindowSize:], true
}

// Sample compresses data at flate.BestCompression with and without dict,
// and checks that the dictionary stream inflates back to data.
func Sample(name string, dict, data []byte) (Report, error) {
	plain, err := deflate(data, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to compress %s: %w", name, err)
	}
	withDict, err := deflate(data, dict)
	if err != nil {
		return Report{}, fmt.Errorf("failed to compress %s with dictionary: %w", name, err)
	}

	restored, err := io.ReadAll(flate.NewReaderDict(bytes.NewReader(withDict), dict))
	if err != nil {
		return Report{}, fmt.Errorf("failed to inflate %s with dictionary: %w", name, err)
	}
	if !bytes.Equal(restored, data) {
		return Report{}, fmt.Errorf("round trip mismatch for %s", name)
	}

	return Report{
		Sample:   name,
		Raw:      len(data),
		Plain:    len(plain),
		WithDict: len(withDict),
	}, nil
}

func deflate(data, dict []byte) ([]byte, error) {
	var buf bytes.Buffer
	var (
		w   *flate.Writer
		err error
	)
	if dict == nil {
		w, err = flate.NewWriter(&buf, flate.BestCompression)
	} else {
		w, err = flate.NewWriterDict(&buf, flate.BestCompression, dict)
	}
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
