// Package query derives the combined, filtered view of all logs shown on the
// approvals dashboard. It only reads its inputs.
package query

import (
	"strings"
	"time"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
)

// Criteria holds the optional dashboard filters. Zero values impose no constraint.
type Criteria struct {
	// NameText matches the employee or equipment name.
	NameText string
	// CategoryText matches the job name or material category.
	CategoryText string
	// ExactDate matches the log's calendar date.
	ExactDate *time.Time
	Status    *domain.Status
}

// IsEmpty reports whether c filters nothing out.
func (c Criteria) IsEmpty() bool {
	return c.NameText == "" &&
		c.CategoryText == "" &&
		c.ExactDate == nil &&
		c.Status == nil
}

// Combine concatenates the three collections into one ordered sequence:
// time entries, then equipment, then materials, each in source order.
func Combine(times []domain.TimeEntry, equipment []domain.EquipmentEntry, materials []domain.MaterialEntry) []domain.Log {
	logs := make([]domain.Log, 0, len(times)+len(equipment)+len(materials))
	for _, e := range times {
		logs = append(logs, domain.NewTimeLog(e))
	}
	for _, e := range equipment {
		logs = append(logs, domain.NewEquipmentLog(e))
	}
	for _, e := range materials {
		logs = append(logs, domain.NewMaterialLog(e))
	}
	return logs
}

// Filter keeps the logs matching every present criterion, in input order.
func Filter(logs []domain.Log, c Criteria) []domain.Log {
	out := make([]domain.Log, 0, len(logs))
	for _, log := range logs {
		if Matches(log, c) {
			out = append(out, log)
		}
	}
	return out
}

// Matches reports whether log satisfies all present criteria.
func Matches(log domain.Log, c Criteria) bool {
	if c.NameText != "" {
		subject, ok := subjectOf(log)
		if !ok || !containsFold(subject, c.NameText) {
			return false
		}
	}
	if c.CategoryText != "" {
		group, ok := groupOf(log)
		if !ok || !containsFold(group, c.CategoryText) {
			return false
		}
	}
	if c.ExactDate != nil && !domain.SameDate(log.Date(), *c.ExactDate) {
		return false
	}
	if c.Status != nil && log.Status() != *c.Status {
		return false
	}
	return true
}

// subjectOf returns the employee or equipment name. Materials have none.
func subjectOf(log domain.Log) (string, bool) {
	if e, ok := log.TimeEntry(); ok {
		return e.EmployeeName, true
	}
	if e, ok := log.EquipmentEntry(); ok {
		return e.EquipmentName, true
	}
	return "", false
}

// groupOf returns the job name or material category. Equipment has none.
func groupOf(log domain.Log) (string, bool) {
	if e, ok := log.TimeEntry(); ok {
		return e.JobName, true
	}
	if e, ok := log.MaterialEntry(); ok {
		return e.Category, true
	}
	return "", false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
