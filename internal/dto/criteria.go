package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/field_ops_app/internal/apperrors"
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/SscSPs/field_ops_app/internal/core/query"
)

// CriteriaRequest defines the dashboard filters as entered by the reviewer.
// Empty values impose no constraint.
type CriteriaRequest struct {
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date,omitempty"`   // YYYY-MM-DD
	Status   string `json:"status,omitempty"` // Pending or Approved
}

// ToCriteria parses the request into query criteria.
func (r CriteriaRequest) ToCriteria() (query.Criteria, error) {
	c := query.Criteria{
		NameText:     r.Name,
		CategoryText: r.Category,
	}
	if date := strings.TrimSpace(r.Date); date != "" {
		d, err := domain.ParseDate(date)
		if err != nil {
			return query.Criteria{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		c.ExactDate = &d
	}
	if status := strings.TrimSpace(r.Status); status != "" {
		s, err := domain.ParseStatus(status)
		if err != nil {
			return query.Criteria{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		c.Status = &s
	}
	return c, nil
}
