// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/snowball/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a hub (index 0) with n-1 leaves. Spokes go hub→leaf in leaf
// order; directed graphs also get leaf→hub so the hub stays reachable both ways.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		directed := g.Directed()
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(methodStar, g, cfg, 0, leaf); err != nil {
				return err
			}
			if directed {
				if err := addEdge(methodStar, g, cfg, leaf, 0); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
