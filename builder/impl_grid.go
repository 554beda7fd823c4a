// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/snowball/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols orthogonal lattice with 4-neighborhood.
//
// Cell (r,c) gets index r*cols+c, so IDs run row-major from the first ID.
// Each cell links to its right and bottom neighbor, in that order; directed
// graphs also get the reverse arc so the lattice stays symmetric.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addVertices(methodGrid, g, cfg, rows*cols); err != nil {
			return err
		}

		link := func(u, v int) error {
			if err := addEdge(methodGrid, g, cfg, u, v); err != nil {
				return err
			}
			if g.Directed() {
				return addEdge(methodGrid, g, cfg, v, u)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
