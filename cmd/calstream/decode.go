package main

import (
	"bufio"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plantimetable/calstream/internal/log"
	"github.com/plantimetable/calstream/source"
)

func (a *app) decodeCmd() *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "decode [file|url|-]",
		Short: "Print the days and values of a stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.target(args)
			if err != nil {
				return err
			}

			points, err := a.loadPoints(cmd.Context(), cmd, target, compression)
			if err != nil {
				return err
			}
			log.NewLogger().WithField("points", len(points)).Debug("decoded stream")

			w := bufio.NewWriter(cmd.OutOrStdout())
			var line []byte
			for _, p := range points {
				line = p.Date.AppendFormat(line[:0], source.DayLayout)
				line = append(line, '\t')
				line = strconv.AppendInt(line, p.Value, 10)
				line = append(line, '\n')
				if _, err := w.Write(line); err != nil {
					return err
				}
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&compression, "compression", "identity", "Compression of a local stream file (identity, zstd, s2, lz4)")

	return cmd
}
