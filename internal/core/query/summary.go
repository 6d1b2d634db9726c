package query

import (
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summary aggregates a set of logs for the dashboard header.
type Summary struct {
	Total         int
	ByKind        map[domain.LogKind]int
	ByStatus      map[domain.Status]int
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	RunHours      decimal.Decimal
	// Quantities sums material deliveries per unit; units are never mixed.
	Quantities map[domain.UnitOfMeasure]decimal.Decimal
}

// Pending returns the number of logs still awaiting approval.
func (s Summary) Pending() int {
	return s.ByStatus[domain.Pending]
}

// Summarize totals logs by kind, status, hours and delivered quantity.
func Summarize(logs []domain.Log) Summary {
	s := Summary{
		ByKind:        make(map[domain.LogKind]int, len(domain.Kinds)),
		ByStatus:      make(map[domain.Status]int, 2),
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		RunHours:      decimal.Zero,
		Quantities:    make(map[domain.UnitOfMeasure]decimal.Decimal),
	}

	for _, log := range logs {
		s.Total++
		s.ByKind[log.Kind()]++
		s.ByStatus[log.Status()]++

		switch log.Kind() {
		case domain.KindTime:
			e, _ := log.TimeEntry()
			s.RegularHours = s.RegularHours.Add(e.RegularHours)
			s.OvertimeHours = s.OvertimeHours.Add(e.OvertimeHours)
		case domain.KindEquipment:
			e, _ := log.EquipmentEntry()
			s.RunHours = s.RunHours.Add(e.RunHours)
		case domain.KindMaterial:
			e, _ := log.MaterialEntry()
			current, ok := s.Quantities[e.UnitOfMeasure]
			if !ok {
				current = decimal.Zero
			}
			s.Quantities[e.UnitOfMeasure] = current.Add(e.Quantity)
		}
	}
	return s
}
