// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/snowball/dfs"
	"github.com/katalvlaran/snowball/pajek"
)

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [-d] NETWORK",
		Short: "Print a summary of a Pajek network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directed, _ := cmd.Flags().GetBool("directed")
			g, err := pajek.ReadFile(args[0], directed)
			if err != nil {
				return err
			}

			stats := g.Stats()
			isolated, maxDeg := 0, 0
			for _, v := range g.Vertices() {
				in, out, err := g.Degree(v)
				if err != nil {
					return err
				}
				deg := out
				if stats.Directed {
					deg += in
				}
				if deg == 0 {
					isolated++
				}
				if deg > maxDeg {
					maxDeg = deg
				}
			}

			comps, err := dfs.Components(g)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "network:    %s\n", args[0])
			_, _ = fmt.Fprintf(w, "directed:   %t\n", stats.Directed)
			_, _ = fmt.Fprintf(w, "nodes:      %d\n", stats.VertexCount)
			_, _ = fmt.Fprintf(w, "edges:      %d\n", stats.EdgeCount)
			_, _ = fmt.Fprintf(w, "self-loops: %d\n", stats.SelfLoopCount)
			_, _ = fmt.Fprintf(w, "isolated:   %d\n", isolated)
			_, _ = fmt.Fprintf(w, "max degree: %d\n", maxDeg)
			_, _ = fmt.Fprintf(w, "weak components: %d (largest %d nodes)\n", len(comps), dfs.Largest(comps))

			return nil
		},
	}
	cmd.Flags().BoolP("directed", "d", false, "treat the network as directed")

	return cmd
}
