package main

import (
	"github.com/spf13/cobra"

	"github.com/plantimetable/calstream/calendar"
	"github.com/plantimetable/calstream/client"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		compression string
		hideTotals  bool
	)

	cmd := &cobra.Command{
		Use:   "render [file|url|-]",
		Short: "Render a stream as a text calendar heatmap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.target(args)
			if err != nil {
				return err
			}

			mark := calendar.NewTextHeatmap()
			mark.HideTotals = hideTotals || a.conf.Render.HideTotals

			if isURL(target) {
				fetcher, err := a.newFetcher()
				if err != nil {
					return err
				}

				return client.NewSession(fetcher).Render(cmd.Context(), target, mark, cmd.OutOrStdout())
			}

			points, err := a.loadPoints(cmd.Context(), cmd, target, compression)
			if err != nil {
				return err
			}

			return mark.Render(cmd.OutOrStdout(), calendar.NewLayout(points))
		},
	}

	cmd.Flags().StringVar(&compression, "compression", "identity", "Compression of a local stream file (identity, zstd, s2, lz4)")
	cmd.Flags().BoolVar(&hideTotals, "hide-totals", false, "Do not print monthly totals")

	return cmd
}
