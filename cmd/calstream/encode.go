package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plantimetable/calstream/compress"
	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
	"github.com/plantimetable/calstream/internal/hash"
	"github.com/plantimetable/calstream/internal/log"
	"github.com/plantimetable/calstream/source"
	"github.com/plantimetable/calstream/stream"
)

func (a *app) encodeCmd() *cobra.Command {
	var (
		csvPath     string
		dbPath      string
		output      string
		compression string
		bareTokens  bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode daily counts from a CSV file or SQLite db into a stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("csv") {
				csvPath = a.conf.Source.CSV
			}
			if !cmd.Flags().Changed("db") {
				dbPath = a.conf.Source.DB
			}
			if !cmd.Flags().Changed("compression") {
				compression = a.conf.Encode.Compression
			}
			if !cmd.Flags().Changed("bare-tokens") {
				bareTokens = a.conf.Encode.BareTokens
			}

			counts, err := readCounts(cmd.Context(), csvPath, dbPath)
			if err != nil {
				return err
			}

			body, err := stream.Encode(source.Points(counts), stream.WithBareTokens(bareTokens))
			if err != nil {
				return err
			}

			t, err := format.ParseCompression(compression)
			if err != nil {
				return err
			}
			data, stats, err := compress.CompressWithStats(t, []byte(body))
			if err != nil {
				return err
			}

			log.NewLogger().WithFields(logrus.Fields{
				"days":        len(counts),
				"compression": stats.Algorithm.String(),
				"bytes":       stats.CompressedSize,
				"savings":     fmt.Sprintf("%.1f%%", stats.SpaceSavings()),
				"digest":      hash.Hex(hash.DigestString(body)),
			}).Info("encoded stream")

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			return os.WriteFile(output, data, 0o644)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file of YYYY-MM-DD,count rows (takes precedence over --db)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite db written by the record command")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, stdout when empty")
	cmd.Flags().StringVar(&compression, "compression", "identity", "Output compression (identity, zstd, s2, lz4)")
	cmd.Flags().BoolVar(&bareTokens, "bare-tokens", true, "Omit zero day offsets")

	return cmd
}

func readCounts(ctx context.Context, csvPath, dbPath string) ([]source.DailyCount, error) {
	switch {
	case csvPath != "":
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()

		return source.ReadCSV(f)
	case dbPath != "":
		// Open would create a missing db, encoding an empty stream.
		if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: db %s does not exist, set --csv or record counts first", errs.ErrEmptySource, dbPath)
		}

		db, err := source.Open(dbPath)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		return db.Daily(ctx)
	default:
		return nil, fmt.Errorf("%w: set --csv or --db", errs.ErrEmptySource)
	}
}
