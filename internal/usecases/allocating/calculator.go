package allocating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

// WorkedDays devolve os dias trabalhados da pessoa no período: dias do mês
// menos a união dos dias cobertos por qualquer novidade que cruze o mês.
// Novidades que cobrem o mesmo dia não subtraem em dobro: o conjunto de dias
// é deduplicado antes da contagem.
func WorkedDays(period domain.Period, novelties []*domain.Novelty) int {
	daysInMonth := period.DaysInMonth()
	covered := make(map[int]bool)

	monthStart := period.Start()
	monthEnd := period.End()

	for _, novelty := range novelties {
		start := novelty.StartDate
		if start.Before(monthStart) {
			start = monthStart
		}
		end := novelty.EndDate
		if end.After(monthEnd) {
			end = monthEnd
		}

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			covered[day.Day()] = true
		}
	}

	worked := daysInMonth - len(covered)
	if worked < 0 {
		worked = 0
	}

	return worked
}

// ProratedTarget rateia a meta base pela fração do mês efetivamente
// trabalhada, arredondando em duas casas. Zero quando a base não é positiva.
func ProratedTarget(base, workedDays, daysInMonth int) float64 {
	if base <= 0 || daysInMonth <= 0 {
		return 0
	}

	target := decimal.NewFromInt(int64(base)).
		Mul(decimal.NewFromInt(int64(workedDays))).
		Div(decimal.NewFromInt(int64(daysInMonth))).
		Round(2)

	value, _ := target.Float64()
	return value
}
