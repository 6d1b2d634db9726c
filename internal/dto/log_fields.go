package dto

import (
	"fmt"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LogFields is the submission payload of one log kind.
type LogFields interface {
	// Kind returns the kind of log the fields describe.
	Kind() domain.LogKind
	// ToDomain builds an unsaved log. It fails only when the date cannot be parsed.
	ToDomain() (domain.Log, error)
}

// TimeEntryFields defines the data needed to submit a time card.
type TimeEntryFields struct {
	ID            string          `json:"-" validate:"-"`
	EmployeeName  string          `json:"employeeName" validate:"required"`
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	JobName       string          `json:"jobName" validate:"required"`
	RegularHours  decimal.Decimal `json:"regularHours" validate:"dgte=0"`
	OvertimeHours decimal.Decimal `json:"overtimeHours" validate:"dgte=0"`
	Notes         string          `json:"notes,omitempty"`
}

// EquipmentEntryFields defines the data needed to submit an equipment log.
// Hours are optional; zero is accepted for both.
type EquipmentEntryFields struct {
	ID            string          `json:"-" validate:"-"`
	EquipmentName string          `json:"equipmentName" validate:"required"`
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	TotalHours    decimal.Decimal `json:"totalHours" validate:"dgte=0"`
	RunHours      decimal.Decimal `json:"runHours" validate:"dgte=0"`
	Notes         string          `json:"notes,omitempty"`
}

// MaterialEntryFields defines the data needed to submit a material delivery.
// Subcategory must belong to Category's vocabulary.
type MaterialEntryFields struct {
	ID            string               `json:"-" validate:"-"`
	Date          string               `json:"date" validate:"required,datetime=2006-01-02"`
	Category      string               `json:"category" validate:"required"`
	Subcategory   string               `json:"subcategory" validate:"required"`
	Supplier      string               `json:"supplier" validate:"required"`
	UnitOfMeasure domain.UnitOfMeasure `json:"unitOfMeasure" validate:"required,oneof=tonnes cubic_yards"`
	Quantity      decimal.Decimal      `json:"quantity" validate:"required,dgt=0"`
	Notes         string               `json:"notes,omitempty"`
}

func (TimeEntryFields) Kind() domain.LogKind      { return domain.KindTime }
func (EquipmentEntryFields) Kind() domain.LogKind { return domain.KindEquipment }
func (MaterialEntryFields) Kind() domain.LogKind  { return domain.KindMaterial }

func (f TimeEntryFields) ToDomain() (domain.Log, error) {
	env, err := envelope(f.ID, f.Date, f.Notes)
	if err != nil {
		return domain.Log{}, err
	}
	return domain.NewTimeLog(domain.TimeEntry{
		Envelope:      env,
		EmployeeName:  f.EmployeeName,
		JobName:       f.JobName,
		RegularHours:  f.RegularHours,
		OvertimeHours: f.OvertimeHours,
	}), nil
}

func (f EquipmentEntryFields) ToDomain() (domain.Log, error) {
	env, err := envelope(f.ID, f.Date, f.Notes)
	if err != nil {
		return domain.Log{}, err
	}
	return domain.NewEquipmentLog(domain.EquipmentEntry{
		Envelope:      env,
		EquipmentName: f.EquipmentName,
		TotalHours:    f.TotalHours,
		RunHours:      f.RunHours,
	}), nil
}

func (f MaterialEntryFields) ToDomain() (domain.Log, error) {
	env, err := envelope(f.ID, f.Date, f.Notes)
	if err != nil {
		return domain.Log{}, err
	}
	return domain.NewMaterialLog(domain.MaterialEntry{
		Envelope:      env,
		Category:      f.Category,
		Subcategory:   f.Subcategory,
		Supplier:      f.Supplier,
		UnitOfMeasure: f.UnitOfMeasure,
		Quantity:      f.Quantity,
	}), nil
}

func envelope(id, date, notes string) (domain.Envelope, error) {
	env := domain.Envelope{ID: id, Notes: notes}
	if date == "" {
		return env, nil
	}
	d, err := domain.ParseDate(date)
	if err != nil {
		return domain.Envelope{}, err
	}
	env.Date = d
	return env, nil
}

// NewLogFields returns an empty, decodable payload for kind.
func NewLogFields(kind domain.LogKind) (LogFields, error) {
	switch kind {
	case domain.KindTime:
		return &TimeEntryFields{}, nil
	case domain.KindEquipment:
		return &EquipmentEntryFields{}, nil
	case domain.KindMaterial:
		return &MaterialEntryFields{}, nil
	default:
		return nil, fmt.Errorf("unknown log kind %q", kind)
	}
}

// FieldsFromLog converts a stored log back into its editable payload.
// The id is carried along so the edited log replaces the stored record.
func FieldsFromLog(log domain.Log) LogFields {
	env := log.Envelope()
	date := domain.FormatDate(env.Date)
	switch log.Kind() {
	case domain.KindTime:
		e, _ := log.TimeEntry()
		return &TimeEntryFields{
			ID:            env.ID,
			EmployeeName:  e.EmployeeName,
			Date:          date,
			JobName:       e.JobName,
			RegularHours:  e.RegularHours,
			OvertimeHours: e.OvertimeHours,
			Notes:         env.Notes,
		}
	case domain.KindEquipment:
		e, _ := log.EquipmentEntry()
		return &EquipmentEntryFields{
			ID:            env.ID,
			EquipmentName: e.EquipmentName,
			Date:          date,
			TotalHours:    e.TotalHours,
			RunHours:      e.RunHours,
			Notes:         env.Notes,
		}
	case domain.KindMaterial:
		e, _ := log.MaterialEntry()
		return &MaterialEntryFields{
			ID:            env.ID,
			Date:          date,
			Category:      e.Category,
			Subcategory:   e.Subcategory,
			Supplier:      e.Supplier,
			UnitOfMeasure: e.UnitOfMeasure,
			Quantity:      e.Quantity,
			Notes:         env.Notes,
		}
	default:
		return nil
	}
}
