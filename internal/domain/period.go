package domain

import (
	"fmt"
	"sort"
	"time"
)

// PeriodLayout é o layout usado para períodos no formato mm-yyyy
const PeriodLayout = "01-2006"

// Period representa um ciclo mensal de orçamento/conformidade (ano + mês)
type Period struct {
	Year  int
	Month time.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%02d-%04d", int(p.Month), p.Year)
}

// ParsePeriod converte uma string mm-yyyy em Period
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(PeriodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("período inválido %q: %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodOf retorna o período ao qual a data pertence
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Previous retorna o mês-calendário imediatamente anterior
func (p Period) Previous() Period {
	prev := p.Start().AddDate(0, -1, 0)
	return PeriodOf(prev)
}

// Start retorna o primeiro dia do período (UTC, meia-noite)
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End retorna o último dia do período (UTC, meia-noite)
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// DaysInMonth retorna a quantidade de dias-calendário do período
func (p Period) DaysInMonth() int {
	return p.End().Day()
}

// Contains indica se a data (desconsiderando hora) cai dentro do período
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// PeriodsSpanned lista, em ordem, todos os períodos tocados pelo intervalo
// [start, end] (datas inclusivas)
func PeriodsSpanned(start, end time.Time) []Period {
	periods := []Period{}
	if end.Before(start) {
		return periods
	}

	current := PeriodOf(start)
	last := PeriodOf(end)
	for {
		periods = append(periods, current)
		if current == last {
			break
		}
		current = PeriodOf(current.Start().AddDate(0, 1, 0))
	}

	return periods
}

// PeriodsUnion junta dois conjuntos de períodos sem duplicatas, em ordem
// cronológica. Usado para derivar o conjunto de recálculo quando um intervalo
// antigo e um novo divergem.
func PeriodsUnion(a, b []Period) []Period {
	seen := make(map[Period]bool, len(a)+len(b))
	union := make([]Period, 0, len(a)+len(b))

	for _, p := range append(append([]Period{}, a...), b...) {
		if !seen[p] {
			seen[p] = true
			union = append(union, p)
		}
	}

	sort.Slice(union, func(i, j int) bool {
		return union[i].Start().Before(union[j].Start())
	})

	return union
}
