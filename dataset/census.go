package dataset

import (
	"github.com/sheikhomar/yace-rw/matrix"
)

// CensusParser reads the US Census 1990 dataset: a comma-separated file with
// a header line, where the first column is a case identifier and the
// remaining 68 columns are categorical attributes used as coordinates.
type CensusParser struct{}

// Parse reads the file into a point matrix.
func (p *CensusParser) Parse(path string) (*matrix.Matrix, error) {
	return parseDelimited(path, delimitedOptions{
		skipHeader: true,
		dropFirst:  true,
	})
}
