package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sheikhomar/yace-rw/matrix"
)

// towerDimensions is the fixed dimensionality of the Tower dataset.
const towerDimensions = 3

// TowerParser reads the Tower dataset: one coordinate value per line, with
// every three consecutive values forming one 3-d point.
type TowerParser struct{}

// Parse reads the file into a point matrix.
func (p *TowerParser) Parse(path string) (*matrix.Matrix, error) {
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var values []float64

	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &ErrDataFormat{Path: path, Line: line, cause: err}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ErrDataFormat{Path: path, Line: line, cause: err}
	}
	if len(values) == 0 {
		return nil, &ErrDataFormat{Path: path, Line: line, cause: io.ErrUnexpectedEOF}
	}
	if len(values)%towerDimensions != 0 {
		return nil, &ErrDataFormat{
			Path:  path,
			Line:  line,
			cause: fmt.Errorf("%d values do not form complete %d-dimensional points", len(values), towerDimensions),
		}
	}

	m, err := matrix.FromFlat(values, len(values)/towerDimensions, towerDimensions)
	if err != nil {
		return nil, &ErrDataFormat{Path: path, Line: line, cause: err}
	}

	return m, nil
}
