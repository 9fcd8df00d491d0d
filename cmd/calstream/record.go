package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/internal/log"
	"github.com/plantimetable/calstream/source"
)

func (a *app) recordCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "record <YYYY-MM-DD|today> [n]",
		Short: "Add n (default 1) new timetables to a day in the SQLite db",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("db") {
				dbPath = a.conf.Source.DB
			}
			if dbPath == "" {
				return fmt.Errorf("%w: set --db", errs.ErrEmptySource)
			}

			day, err := parseRecordDay(args[0])
			if err != nil {
				return err
			}

			n := int64(1)
			if len(args) == 2 {
				n, err = strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("%w: count %q", errs.ErrInvalidRecord, args[1])
				}
			}

			db, err := source.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Record(cmd.Context(), day, n); err != nil {
				return err
			}

			log.NewLogger().WithFields(logrus.Fields{
				"day":   day.Format(source.DayLayout),
				"count": n,
			}).Info("recorded")

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite db path")

	return cmd
}

func parseRecordDay(s string) (time.Time, error) {
	if s == "today" {
		return time.Now().UTC(), nil
	}

	day, err := time.ParseInLocation(source.DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", errs.ErrInvalidRecord, s)
	}

	return day, nil
}
