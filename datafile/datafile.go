// Package datafile reads initial atom configurations and writes simulation
// outputs as flat numeric columns, ready for gnuplot-style tooling.
//
// Two formats:
//
//   - positions: one whitespace-separated "x y z" triple per line; blank
//     lines are skipped on read, writes use fixed-width tab-separated
//     columns;
//   - series: two tab-separated columns per line, used for iteration/energy
//     traces, iteration/radius traces and histogram center/value pairs.
//
// Reads are all-or-nothing: a malformed line fails the whole file with the
// offending line number attached to a sentinel error.
package datafile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors. Parse failures wrap them with the line number.
var (
	// ErrFieldCount indicates a coordinate line without exactly three fields.
	ErrFieldCount = errors.New("datafile: expected three coordinates per line")

	// ErrBadNumber indicates an unparsable numeric field.
	ErrBadNumber = errors.New("datafile: invalid number")

	// ErrSeriesLength indicates series columns of different lengths.
	ErrSeriesLength = errors.New("datafile: series columns differ in length")
)

// ReadPositions parses Cartesian triples, one per non-blank line. Any
// malformed line fails the whole read; no partial result is ever returned.
//
// Complexity: O(lines).
func ReadPositions(r io.Reader) ([][3]float64, error) {
	var (
		coords  [][3]float64
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w, got %d", lineNo, ErrFieldCount, len(fields))
		}
		var triple [3]float64
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrBadNumber, f)
			}
			triple[k] = v
		}
		coords = append(coords, triple)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("datafile: read: %w", err)
	}
	return coords, nil
}

// LoadPositions reads a positions file from disk.
func LoadPositions(path string) ([][3]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datafile: %w", err)
	}
	defer f.Close()
	return ReadPositions(f)
}

// WritePositions writes one fixed-width Cartesian row per atom, matching the
// layout ReadPositions accepts.
func WritePositions(w io.Writer, coords [][3]float64) error {
	for _, c := range coords {
		if _, err := fmt.Fprintf(w, "%-10.5f\t%-10.5f\t%-10.5f\n", c[0], c[1], c[2]); err != nil {
			return fmt.Errorf("datafile: write: %w", err)
		}
	}
	return nil
}

// WriteSeries writes aligned x/y columns as tab-separated lines.
func WriteSeries(w io.Writer, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrSeriesLength
	}
	for i := range xs {
		if _, err := fmt.Fprintf(w, "%g\t%g\n", xs[i], ys[i]); err != nil {
			return fmt.Errorf("datafile: write: %w", err)
		}
	}
	return nil
}

// SavePositions writes a positions file, creating or truncating path.
func SavePositions(path string, coords [][3]float64) error {
	return saveFile(path, func(w io.Writer) error {
		return WritePositions(w, coords)
	})
}

// SaveSeries writes a two-column series file, creating or truncating path.
func SaveSeries(path string, xs, ys []float64) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteSeries(w, xs, ys)
	})
}

// saveFile funnels a buffered write into path, folding flush and close
// failures into the returned error.
func saveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("datafile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("datafile: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("datafile: flush: %w", err)
	}
	return nil
}
