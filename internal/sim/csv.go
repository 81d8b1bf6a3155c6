package sim

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

func WriteLedgerCSV(path string, ledger []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"timestamp",
		"wind_speed_ms",
		"price_eur_mwh",
		"power_mw",
		"revenue_eur",
		"pressure_bar",
		"visit",
		"status",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			fmtTime(r.Timestamp),
			fmtFloat(r.WindSpeed),
			fmtFloat(r.PriceEur),
			fmtFloat(r.PowerMW),
			fmtFloat(r.RevenueEur),
			fmtFloat(r.PressureBar),
			fmtBool(r.Visit),
			string(r.Status),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func fmtBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
