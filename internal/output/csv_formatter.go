package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/finsight/finance-engine/internal/domain"
)

// CSVFormatter emits the year/age series of a result: DRIP snapshots and the
// retirement projection. Scalar sections (option, paycheck) belong to the
// console and json formatters.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.DashboardResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if result.Drip != nil {
		if err := w.Write([]string{"section", "year", "with_drip", "without_drip", "advantage"}); err != nil {
			return nil, err
		}
		for i := range result.Drip.WithDrip {
			record := []string{
				"drip",
				strconv.Itoa(result.Drip.WithDrip[i].Year),
				result.Drip.WithDrip[i].Value.StringFixed(0),
				result.Drip.WithoutDrip[i].Value.StringFixed(0),
				result.Drip.Advantage(i).StringFixed(0),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	if result.Retirement != nil {
		if err := w.Write([]string{"section", "age", "balance", "phase"}); err != nil {
			return nil, err
		}
		for _, p := range result.Retirement.Projection {
			record := []string{
				"retirement",
				strconv.Itoa(p.Age),
				p.Balance.StringFixed(2),
				string(p.Phase),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
