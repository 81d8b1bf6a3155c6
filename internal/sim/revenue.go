package sim

// GrossRevenue sums per-step revenue over productive rows: pressure at or
// above the minimum and no visit in progress. Rows failing either condition
// are silently unproductive; they cost nothing beyond their lost revenue.
func GrossRevenue(ledger []Row, minPressureBar float64) float64 {
	total := 0.0
	for _, r := range ledger {
		if r.Visit || r.PressureBar < minPressureBar {
			continue
		}
		total += r.RevenueEur
	}
	return total
}

// NetRevenue deducts vessel dispatch costs from the gross revenue.
func NetRevenue(ledger []Row, visitCount int, minPressureBar, vesselCostEur float64) float64 {
	return GrossRevenue(ledger, minPressureBar) - float64(visitCount)*vesselCostEur
}
