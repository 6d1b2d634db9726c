package dto

import (
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/SscSPs/field_ops_app/internal/core/query"
	"github.com/shopspring/decimal"
)

// SummaryResponse defines the totals returned for a dashboard view.
type SummaryResponse struct {
	Total         int                                      `json:"total"`
	Pending       int                                      `json:"pending"`
	Approved      int                                      `json:"approved"`
	ByKind        map[domain.LogKind]int                   `json:"byKind"`
	RegularHours  decimal.Decimal                          `json:"regularHours"`
	OvertimeHours decimal.Decimal                          `json:"overtimeHours"`
	RunHours      decimal.Decimal                          `json:"runHours"`
	Quantities    map[domain.UnitOfMeasure]decimal.Decimal `json:"quantities,omitempty"`
}

// ToSummaryResponse converts a query.Summary to SummaryResponse DTO
func ToSummaryResponse(s query.Summary) SummaryResponse {
	return SummaryResponse{
		Total:         s.Total,
		Pending:       s.ByStatus[domain.Pending],
		Approved:      s.ByStatus[domain.Approved],
		ByKind:        s.ByKind,
		RegularHours:  s.RegularHours,
		OvertimeHours: s.OvertimeHours,
		RunHours:      s.RunHours,
		Quantities:    s.Quantities,
	}
}
