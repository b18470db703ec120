package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sheikhomar/yace-rw/matrix"
)

// CSVParser reads comma-separated files where every column is a numeric
// coordinate and every line is one point.
type CSVParser struct{}

// Parse reads the file into a point matrix.
func (p *CSVParser) Parse(path string) (*matrix.Matrix, error) {
	return parseDelimited(path, delimitedOptions{})
}

// delimitedOptions controls how comma-separated rows map onto coordinates.
type delimitedOptions struct {
	skipHeader bool
	dropFirst  bool
	dropLast   bool
}

func parseDelimited(path string, opts delimitedOptions) (*matrix.Matrix, error) {
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var rows [][]float64

	line := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if opts.skipHeader && line == 1 {
			continue
		}

		fields := strings.Split(text, ",")
		if opts.dropFirst {
			fields = fields[1:]
		}
		if opts.dropLast && len(fields) > 0 {
			fields = fields[:len(fields)-1]
		}
		if len(fields) == 0 {
			return nil, &ErrDataFormat{Path: path, Line: line, cause: fmt.Errorf("no coordinates left after dropping columns")}
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &ErrDataFormat{Path: path, Line: line, cause: err}
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ErrDataFormat{Path: path, Line: line, cause: err}
	}
	if len(rows) == 0 {
		return nil, &ErrDataFormat{Path: path, Line: line, cause: io.ErrUnexpectedEOF}
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, &ErrDataFormat{Path: path, Line: line, cause: err}
	}

	return m, nil
}
