/*
 * txt.go, part of gopic.
 *
 * Copyright 2024 The goPIC authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package txt writes particle datasets as delimited text with a
// unit-annotated header, the format the downstream trackers consume.
package txt

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	pic "github.com/opmdtools/gopic"
)

// Writer exports one dataset. The Exclude methods narrow the columns
// written; they return the Writer for chaining, mirroring how export
// pipelines are assembled in the analysis scripts.
type Writer struct {
	set    *pic.ParticleSet
	skip   map[string]bool
	logger *slog.Logger
}

// NewWriter returns a Writer exporting all columns of set.
func NewWriter(set *pic.ParticleSet) *Writer {
	return &Writer{set: set, skip: map[string]bool{}}
}

// Logger sets a logger for progress and file-size messages. Nil (the
// default) disables them.
func (W *Writer) Logger(l *slog.Logger) *Writer {
	W.logger = l
	return W
}

// ExcludeWeights omits the weights column. Used after the weights have been
// leveled to one and carry no information.
func (W *Writer) ExcludeWeights() *Writer {
	W.skip[pic.ColWeights] = true
	return W
}

// ExcludeEnergy omits the energy column, for consumers that rederive it.
func (W *Writer) ExcludeEnergy() *Writer {
	W.skip[pic.ColEnergy] = true
	return W
}

// Exclude omits an arbitrary column.
func (W *Writer) Exclude(name string) *Writer {
	W.skip[name] = true
	return W
}

// WriteFile writes the dataset to the file called name and returns the
// size of the finished file in bytes. A name ending in .gz or .zst
// compresses the output accordingly.
func (W *Writer) WriteFile(name string) (int64, error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, err
	}
	h, err := compressor(name, f)
	if err != nil {
		f.Close()
		return 0, err
	}
	werr := W.WriteTo(h)
	//the compressor flushes on Close, so close before stat and even on error
	cerr := h.Close()
	if err := f.Close(); werr == nil && cerr == nil && err != nil {
		return 0, err
	}
	if werr != nil {
		return 0, werr
	}
	if cerr != nil {
		return 0, cerr
	}
	info, err := os.Stat(name)
	if err != nil {
		return 0, err
	}
	if W.logger != nil {
		W.logger.Info("dataset written", "file", name, "bytes", info.Size())
	}
	return info.Size(), nil
}

// WriteTo writes the dataset to w: one unit-annotated header line, then one
// comma-separated record per line with %.7e values.
func (W *Writer) WriteTo(w io.Writer) error {
	names := make([]string, 0, len(W.set.Names()))
	cols := make([][]float64, 0, cap(names))
	for _, name := range W.set.Names() {
		if W.skip[name] {
			continue
		}
		col, err := W.set.Column(name)
		if err != nil {
			return err
		}
		names = append(names, name)
		cols = append(cols, col)
	}
	if len(names) == 0 {
		return fmt.Errorf("goPIC/txt: all columns excluded, nothing to write")
	}
	bw := bufio.NewWriter(w)
	header := make([]string, len(names))
	for i, name := range names {
		header[i] = fmt.Sprintf("%s (%s)", name, pic.Unit(name))
	}
	if _, err := bw.WriteString(strings.Join(header, ", ") + "\n"); err != nil {
		return err
	}
	for i := 0; i < W.set.Len(); i++ {
		for j := range cols {
			if j > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%.7e", cols[j][i]); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// compressor wraps f according to the extension of name. Plain files get a
// no-op Close so WriteFile can treat all three cases alike.
func compressor(name string, f io.Writer) (io.WriteCloser, error) {
	format := strings.ToLower(name)
	switch {
	case strings.HasSuffix(format, ".zst"):
		z, err := zstd.NewWriter(f)
		if err != nil {
			return nil, err
		}
		return z, nil
	case strings.HasSuffix(format, ".gz"):
		return gzip.NewWriter(f), nil
	}
	return nopCloser{f}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
