package simulation

import (
	"encoding/csv"
	"io"
	"strconv"

	"baccarat_sim/internal/model"
	"baccarat_sim/pkg/money"
)

// utf8BOM чтобы Excel открывал файл в UTF-8
const utf8BOM = "\uFEFF"

var exportHeader = []string{"rank", "position", "rule", "final_balance", "final_balance_units"}

// ExportCSV пишет рейтинг стратегий в CSV.
// final_balance - в деньгах, final_balance_units - в единицах масштаба (например, в 만원)
func ExportCSV(w io.Writer, ranking []model.StrategySummary, scale int64) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for i, s := range ranking {
		record := []string{
			strconv.Itoa(i + 1),
			s.Position.String(),
			s.Rule.String(),
			money.Format(s.FinalBalance),
			money.Units(s.FinalBalance, scale),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
