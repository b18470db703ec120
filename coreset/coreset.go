// Package coreset implements weighted-subset construction for k-means: it
// approximates a large point set by a much smaller weighted multiset of point
// indices that preserves clustering cost within provable bounds.
//
// Three interchangeable strategies populate the shared Coreset model:
//
//   - UniformSampling draws points uniformly without replacement.
//   - SensitivitySampling draws points with replacement proportional to an
//     upper bound on their share of the clustering cost.
//   - GroupSampling stratifies points into geometric sensitivity ranges and
//     samples uniformly within each group.
package coreset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/sheikhomar/yace-rw/matrix"
)

// Point is one weighted entry of a coreset. Index refers to a row of the
// original point matrix; repeated indices are independent contributions,
// never merged.
type Point struct {
	Index  int
	Weight float64
}

// Coreset is an ordered weighted multiset over point indices. It is built
// append-only by exactly one strategy run and read-only afterwards.
type Coreset struct {
	// TargetSize is the requested budget T. Uniform and sensitivity sampling
	// fill it exactly; group sampling may produce fewer entries.
	TargetSize int

	points []Point
}

// New creates an empty coreset with capacity for targetSize entries.
func New(targetSize int) *Coreset {
	return &Coreset{
		TargetSize: targetSize,
		points:     make([]Point, 0, targetSize),
	}
}

// AddPoint appends one (index, weight) entry.
func (c *Coreset) AddPoint(index int, weight float64) {
	c.points = append(c.points, Point{Index: index, Weight: weight})
}

// Len returns the number of entries.
func (c *Coreset) Len() int { return len(c.points) }

// Points returns the entries in insertion order. The returned slice must be
// treated as read-only.
func (c *Coreset) Points() []Point { return c.points }

// TotalWeight returns the sum of all entry weights.
func (c *Coreset) TotalWeight() float64 {
	var total float64
	for _, p := range c.points {
		total += p.Weight
	}
	return total
}

// WriteTo writes, for every entry in insertion order, the corresponding
// original point's coordinates followed by its weight, one entry per line.
// The coreset itself is not mutated.
func (c *Coreset) WriteTo(m *matrix.Matrix, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, p := range c.points {
		if p.Index < 0 || p.Index >= m.Rows() {
			return &ErrInvalidIndex{Index: p.Index, Size: m.Rows()}
		}

		for _, v := range m.Row(p.Index) {
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return fmt.Errorf("write coordinate: %w", err)
			}
			if err := bw.WriteByte(' '); err != nil {
				return fmt.Errorf("write separator: %w", err)
			}
		}
		if _, err := bw.WriteString(strconv.FormatFloat(p.Weight, 'g', -1, 64)); err != nil {
			return fmt.Errorf("write weight: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	return bw.Flush()
}
