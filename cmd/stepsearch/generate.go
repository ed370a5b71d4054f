package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsearch/graphfile"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the current graph and parameters as a YAML document",
		Long: `generate writes the graph selected by the root flags (the seeded
--shape graph, classroom by default) to --out, or to stdout when --out is empty.
The document can be edited and fed back with --graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := opts.loadSource()
			if err != nil {
				return err
			}
			cfg, err := opts.config(cmd, src)
			if err != nil {
				return err
			}
			doc := graphfile.FromGraph(src.graph, cfg)
			if alg, aerr := opts.algorithmFor(cmd, src.doc); aerr == nil && cmd.Flags().Changed("algorithm") {
				doc.Algorithm = alg.String()
			}
			if out == "" {
				return graphfile.Encode(cmd.OutOrStdout(), doc)
			}

			return graphfile.SaveFile(out, doc)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")

	return cmd
}
