package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/centrality"
	"github.com/katalvlaran/costar/dfs"
	"github.com/katalvlaran/costar/report"
)

func newPathCmd(s *session) *cobra.Command {
	var distanceOnly bool

	cmd := &cobra.Command{
		Use:   "path <actor> <actor>",
		Short: "Print the degrees of separation between two actors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			built, ctx, cancel, err := s.build(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			find := bfs.Path
			if distanceOnly {
				find = bfs.Distance
			}
			res, err := find(built.Graph, args[0], args[1], bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			if distanceOnly {
				return report.WriteDistances(cmd.OutOrStdout(), []bfs.Result{res})
			}

			return report.WritePaths(cmd.OutOrStdout(), []bfs.Result{res})
		},
	}
	cmd.Flags().BoolVar(&distanceOnly, "distance-only", false, "Print only the distance")

	return cmd
}

func newComponentsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Print connectivity and component sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			built, ctx, cancel, err := s.build(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			comps, err := dfs.Components(built.Graph, dfs.WithContext(ctx))
			if err != nil {
				return err
			}

			return report.WriteComponentSizes(cmd.OutOrStdout(), comps)
		},
	}
}

func newTopCmd(s *session) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print the actors with the most distinct co-stars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				k = s.cfg.TopK
			}
			built, _, cancel, err := s.build(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()

			top, err := centrality.TopK(built.Graph, k)
			if err != nil {
				return err
			}

			return report.WriteTopK(cmd.OutOrStdout(), top)
		},
	}
	cmd.Flags().IntVarP(&k, "count", "k", 5, "Number of actors to print")

	return cmd
}
