package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LogKind identifies which collection a log belongs to.
type LogKind string

const (
	KindTime      LogKind = "time"
	KindEquipment LogKind = "equipment"
	KindMaterial  LogKind = "material"
)

// Kinds lists every log kind in combined-view order.
var Kinds = []LogKind{KindTime, KindEquipment, KindMaterial}

// IsValid reports whether k is a known kind.
func (k LogKind) IsValid() bool {
	return k == KindTime || k == KindEquipment || k == KindMaterial
}

// ParseLogKind converts user input to a LogKind.
func ParseLogKind(s string) (LogKind, error) {
	kind := LogKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("unknown log kind %q", s)
	}
	return kind, nil
}

// Label is the human readable name shown on the approvals dashboard.
func (k LogKind) Label() string {
	switch k {
	case KindTime:
		return "Employee Time"
	case KindEquipment:
		return "Equipment"
	case KindMaterial:
		return "Material"
	default:
		return string(k)
	}
}

// TimeEntry is a labor time card.
type TimeEntry struct {
	Envelope
	EmployeeName  string          `json:"employeeName"`
	JobName       string          `json:"jobName"`
	RegularHours  decimal.Decimal `json:"regularHours"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
}

// EquipmentEntry is a daily equipment usage log.
// TotalHours is the cumulative machine meter reading; RunHours covers the day.
type EquipmentEntry struct {
	Envelope
	EquipmentName string          `json:"equipmentName"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	RunHours      decimal.Decimal `json:"runHours"`
}

// MaterialEntry is a material delivery.
type MaterialEntry struct {
	Envelope
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	Supplier      string          `json:"supplier"`
	UnitOfMeasure UnitOfMeasure   `json:"unitOfMeasure"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// Log is one of TimeEntry, EquipmentEntry or MaterialEntry.
// The kind is fixed by the constructor; the zero Log has no kind.
type Log struct {
	kind      LogKind
	time      *TimeEntry
	equipment *EquipmentEntry
	material  *MaterialEntry
}

// NewTimeLog wraps a time entry.
func NewTimeLog(e TimeEntry) Log {
	e.Date = NormalizeDate(e.Date)
	return Log{kind: KindTime, time: &e}
}

// NewEquipmentLog wraps an equipment entry.
func NewEquipmentLog(e EquipmentEntry) Log {
	e.Date = NormalizeDate(e.Date)
	return Log{kind: KindEquipment, equipment: &e}
}

// NewMaterialLog wraps a material entry.
func NewMaterialLog(e MaterialEntry) Log {
	e.Date = NormalizeDate(e.Date)
	return Log{kind: KindMaterial, material: &e}
}

// Kind returns the variant tag, or "" for the zero Log.
func (l Log) Kind() LogKind { return l.kind }

// IsZero reports whether l was never constructed.
func (l Log) IsZero() bool { return l.kind == "" }

// Envelope returns the shared fields of the wrapped entry.
func (l Log) Envelope() Envelope {
	switch l.kind {
	case KindTime:
		return l.time.Envelope
	case KindEquipment:
		return l.equipment.Envelope
	case KindMaterial:
		return l.material.Envelope
	default:
		return Envelope{}
	}
}

func (l Log) ID() string     { return l.Envelope().ID }
func (l Log) Status() Status { return l.Envelope().Status }
func (l Log) Notes() string  { return l.Envelope().Notes }

// Date returns the normalized calendar date of the log.
func (l Log) Date() time.Time { return l.Envelope().Date }

// WithEnvelope returns a copy of l whose shared fields are replaced by env.
// The wrapped entry is copied, so l itself is never modified.
func (l Log) WithEnvelope(env Envelope) Log {
	env.Date = NormalizeDate(env.Date)
	switch l.kind {
	case KindTime:
		e := *l.time
		e.Envelope = env
		return Log{kind: KindTime, time: &e}
	case KindEquipment:
		e := *l.equipment
		e.Envelope = env
		return Log{kind: KindEquipment, equipment: &e}
	case KindMaterial:
		e := *l.material
		e.Envelope = env
		return Log{kind: KindMaterial, material: &e}
	default:
		return l
	}
}

// TimeEntry returns a copy of the wrapped time entry.
func (l Log) TimeEntry() (TimeEntry, bool) {
	if l.kind != KindTime {
		return TimeEntry{}, false
	}
	return *l.time, true
}

// EquipmentEntry returns a copy of the wrapped equipment entry.
func (l Log) EquipmentEntry() (EquipmentEntry, bool) {
	if l.kind != KindEquipment {
		return EquipmentEntry{}, false
	}
	return *l.equipment, true
}

// MaterialEntry returns a copy of the wrapped material entry.
func (l Log) MaterialEntry() (MaterialEntry, bool) {
	if l.kind != KindMaterial {
		return MaterialEntry{}, false
	}
	return *l.material, true
}

// IsTimeEntry reports whether l holds a TimeEntry.
func IsTimeEntry(l Log) bool { return l.kind == KindTime }

// IsEquipmentEntry reports whether l holds an EquipmentEntry.
func IsEquipmentEntry(l Log) bool { return l.kind == KindEquipment }

// IsMaterialEntry reports whether l holds a MaterialEntry.
func IsMaterialEntry(l Log) bool { return l.kind == KindMaterial }
