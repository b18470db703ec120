package dataset

import (
	"github.com/sheikhomar/yace-rw/matrix"
)

// CovertypeParser reads the Covertype dataset: a comma-separated file without
// a header, where the last column is the forest cover type label and the 54
// preceding columns are cartographic coordinates.
type CovertypeParser struct{}

// Parse reads the file into a point matrix.
func (p *CovertypeParser) Parse(path string) (*matrix.Matrix, error) {
	return parseDelimited(path, delimitedOptions{
		dropLast: true,
	})
}
