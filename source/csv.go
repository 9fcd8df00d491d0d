package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plantimetable/calstream/errs"
)

// ReadCSV reads "YYYY-MM-DD,count" rows. A first row whose date does not
// parse is treated as a header. Blank lines are skipped.
//
// Returns:
//   - []DailyCount: Rows in file order
//   - error: errs.ErrInvalidRecord for rows with a bad date, a bad count or a
//     wrong number of columns
func ReadCSV(r io.Reader) ([]DailyCount, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var counts []DailyCount
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: %w", errs.ErrInvalidRecord, err)
			}

			return nil, fmt.Errorf("read csv: %w", err)
		}

		day, err := parseDay(strings.TrimSpace(record[0]))
		if err != nil {
			if row == 1 {
				continue
			}

			return nil, fmt.Errorf("%w: row %d: date %q", errs.ErrInvalidRecord, row, record[0])
		}

		count, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("%w: row %d: count %q", errs.ErrInvalidRecord, row, record[1])
		}

		counts = append(counts, DailyCount{Day: day, Count: count})
	}

	return counts, nil
}
