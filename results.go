package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ResultRow is one benchmarked method and its per-run durations in seconds.
type ResultRow struct {
	Method string
	Values []float64
}

// ResultSet holds the rows of a results file in file order.
type ResultSet []ResultRow

// ParseError reports a value field that is not a number.
type ParseError struct {
	Line  int
	Field int
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, field %d: cannot parse %q as a number: %v", e.Line, e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the results file at path.
func Load(path string) (ResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open results")
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return rows, nil
}

// Parse reads "label,value,value,..." lines from r. Lines with fewer than two
// fields are skipped; any value that does not parse aborts the whole read.
func Parse(r io.Reader) (ResultSet, error) {

	br := bufio.NewReader(r)

	var rows ResultSet
	line := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "read results")
		}
		if text == "" && err == io.EOF {
			break
		}
		line++

		row, ok, perr := parseLine(line, text)
		if perr != nil {
			return nil, perr
		}
		if ok {
			rows = append(rows, row)
		} else {
			slog.Debug("skipping line", "line", line)
		}

		if err == io.EOF {
			break
		}
	}

	return rows, nil
}

func parseLine(line int, text string) (ResultRow, bool, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) < 2 {
		return ResultRow{}, false, nil
	}

	values := make([]float64, 0, len(parts)-1)
	for i, field := range parts[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return ResultRow{}, false, &ParseError{Line: line, Field: i + 1, Text: field, Err: err}
		}
		values = append(values, v)
	}

	return ResultRow{Method: parts[0], Values: values}, true, nil
}
