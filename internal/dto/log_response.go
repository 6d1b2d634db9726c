package dto

import (
	"fmt"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LogResponse defines the data returned for a log.
type LogResponse struct {
	ID     string         `json:"id"`
	Kind   domain.LogKind `json:"kind"`
	Status domain.Status  `json:"status"`
	Fields LogFields      `json:"fields"`
}

// ToLogResponse converts a domain.Log to LogResponse DTO
func ToLogResponse(log domain.Log) LogResponse {
	return LogResponse{
		ID:     log.ID(),
		Kind:   log.Kind(),
		Status: log.Status(),
		Fields: FieldsFromLog(log),
	}
}

// ToListLogResponse converts a slice of domain.Log to a slice of LogResponse DTOs
func ToListLogResponse(logs []domain.Log) []LogResponse {
	res := make([]LogResponse, len(logs))
	for i, log := range logs {
		res[i] = ToLogResponse(log)
	}
	return res
}

// LogRow is one line of the approvals dashboard.
type LogRow struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Tertiary  string `json:"tertiary"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
}

// ToLogRow flattens a log into the dashboard columns.
func ToLogRow(log domain.Log) LogRow {
	row := LogRow{
		ID:     log.ID(),
		Type:   log.Kind().Label(),
		Date:   domain.FormatDate(log.Date()),
		Notes:  log.Notes(),
		Status: string(log.Status()),
	}
	if row.Notes == "" {
		row.Notes = "N/A"
	}

	switch log.Kind() {
	case domain.KindTime:
		e, _ := log.TimeEntry()
		row.Primary = e.EmployeeName
		row.Secondary = e.JobName
		row.Tertiary = fmt.Sprintf("%s Reg / %s OT", hours(e.RegularHours), hours(e.OvertimeHours))
	case domain.KindEquipment:
		e, _ := log.EquipmentEntry()
		row.Primary = e.EquipmentName
		row.Secondary = fmt.Sprintf("Total: %shrs", hours(e.TotalHours))
		row.Tertiary = fmt.Sprintf("Run: %shrs", hours(e.RunHours))
	case domain.KindMaterial:
		e, _ := log.MaterialEntry()
		row.Primary = fmt.Sprintf("%s (%s)", e.Category, e.Subcategory)
		row.Secondary = e.Supplier
		row.Tertiary = fmt.Sprintf("%s %s", e.Quantity.String(), e.UnitOfMeasure.Label())
	}
	return row
}

// ToLogRows converts logs to dashboard rows, keeping their order.
func ToLogRows(logs []domain.Log) []LogRow {
	rows := make([]LogRow, len(logs))
	for i, log := range logs {
		rows[i] = ToLogRow(log)
	}
	return rows
}

func hours(d decimal.Decimal) string {
	return d.String()
}
