package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd(s *session) *cobra.Command {
	var (
		outDir string
		topK   int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the graph and write every report file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("out") {
				s.cfg.OutDir = outDir
			}
			if cmd.Flags().Changed("top") {
				s.cfg.TopK = topK
			}
			if err := s.cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := s.runner.WithTimeout(cmd.Context())
			defer cancel()

			outcomes, err := s.runner.Report(ctx)
			for _, o := range outcomes {
				if o.Err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.Path)
				}
			}

			return err
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "Directory for the report files (default .)")
	cmd.Flags().IntVar(&topK, "top", 0, "Number of actors in top_actors.txt (default 5)")

	return cmd
}
