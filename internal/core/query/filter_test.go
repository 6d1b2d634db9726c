package query_test

import (
	"testing"
	"time"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/SscSPs/field_ops_app/internal/core/query"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	july25 = time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)
	july26 = time.Date(2024, 7, 26, 0, 0, 0, 0, time.UTC)
)

func statusPtr(s domain.Status) *domain.Status { return &s }
func datePtr(t time.Time) *time.Time           { return &t }

func fixture() ([]domain.TimeEntry, []domain.EquipmentEntry, []domain.MaterialEntry) {
	times := []domain.TimeEntry{
		{
			Envelope:     domain.Envelope{ID: "tc-1", Date: july25, Status: domain.Pending},
			EmployeeName: "Gale Hawthorne",
			JobName:      "Stoney NW Widening",
			RegularHours: decimal.NewFromInt(8),
		},
		{
			Envelope:      domain.Envelope{ID: "tc-2", Date: july26, Status: domain.Approved},
			EmployeeName:  "Milling Crew 2",
			JobName:       "Crowchild Interchange Rehab",
			RegularHours:  decimal.NewFromInt(8),
			OvertimeHours: decimal.RequireFromString("1.5"),
		},
	}
	equipment := []domain.EquipmentEntry{
		{
			Envelope:      domain.Envelope{ID: "eq-1", Date: july25, Status: domain.Approved},
			EquipmentName: "Paver 1",
			TotalHours:    decimal.NewFromInt(1234),
			RunHours:      decimal.NewFromInt(8),
		},
		{
			Envelope:      domain.Envelope{ID: "eq-2", Date: july26, Status: domain.Pending},
			EquipmentName: "Milling Machine",
			RunHours:      decimal.NewFromInt(5),
		},
	}
	materials := []domain.MaterialEntry{
		{
			Envelope:      domain.Envelope{ID: "ma-1", Date: july25, Status: domain.Approved},
			Category:      "Asphalt",
			Subcategory:   "City A",
			Supplier:      "Lafarge",
			UnitOfMeasure: domain.Tonnes,
			Quantity:      decimal.NewFromInt(100),
		},
		{
			Envelope:      domain.Envelope{ID: "ma-2", Date: july26, Status: domain.Pending},
			Category:      "Gravel",
			Subcategory:   "25mm GBC",
			Supplier:      "Burnco",
			UnitOfMeasure: domain.CubicYards,
			Quantity:      decimal.NewFromInt(12),
		},
	}
	return times, equipment, materials
}

func ids(logs []domain.Log) []string {
	out := make([]string, len(logs))
	for i, l := range logs {
		out[i] = l.ID()
	}
	return out
}

func TestCombine_OrdersByKindThenInsertion(t *testing.T) {
	combined := query.Combine(fixture())
	assert.Equal(t, []string{"tc-1", "tc-2", "eq-1", "eq-2", "ma-1", "ma-2"}, ids(combined))
	assert.Empty(t, query.Combine(nil, nil, nil))
}

func TestFilter(t *testing.T) {
	combined := query.Combine(fixture())

	tests := []struct {
		name     string
		criteria query.Criteria
		want     []string
	}{
		{"empty criteria keeps everything", query.Criteria{}, []string{"tc-1", "tc-2", "eq-1", "eq-2", "ma-1", "ma-2"}},
		{"name is case-insensitive substring", query.Criteria{NameText: "gale"}, []string{"tc-1"}},
		{"name matches employee and equipment", query.Criteria{NameText: "MILLING"}, []string{"tc-2", "eq-2"}},
		{"name excludes materials", query.Criteria{NameText: "e"}, []string{"tc-1", "tc-2", "eq-1", "eq-2"}},
		{"space name is a real filter", query.Criteria{NameText: " "}, []string{"tc-1", "tc-2", "eq-1", "eq-2"}},
		{"name is matched untrimmed", query.Criteria{NameText: "Hawthorne "}, []string{}},
		{"category matches job name", query.Criteria{CategoryText: "stoney"}, []string{"tc-1"}},
		{"category matches material category", query.Criteria{CategoryText: "gravel"}, []string{"ma-2"}},
		{"category excludes equipment", query.Criteria{CategoryText: "e"}, []string{"tc-1", "tc-2", "ma-2"}},
		{"space category excludes equipment", query.Criteria{CategoryText: " "}, []string{"tc-1", "tc-2"}},
		{"exact date", query.Criteria{ExactDate: datePtr(july25)}, []string{"tc-1", "eq-1", "ma-1"}},
		{"date ignores time of day", query.Criteria{ExactDate: datePtr(july26.Add(13 * time.Hour))}, []string{"tc-2", "eq-2", "ma-2"}},
		{"status approved", query.Criteria{Status: statusPtr(domain.Approved)}, []string{"tc-2", "eq-1", "ma-1"}},
		{"criteria combine with and", query.Criteria{NameText: "paver", Status: statusPtr(domain.Pending)}, []string{}},
		{"all four criteria", query.Criteria{
			NameText:     "gale",
			CategoryText: "widening",
			ExactDate:    datePtr(july25),
			Status:       statusPtr(domain.Pending),
		}, []string{"tc-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(query.Filter(combined, tt.criteria)))
		})
	}
}

func TestFilter_IsIdempotent(t *testing.T) {
	combined := query.Combine(fixture())
	criteria := []query.Criteria{
		{},
		{NameText: "m"},
		{CategoryText: "a", Status: statusPtr(domain.Pending)},
		{ExactDate: datePtr(july26)},
	}
	for _, c := range criteria {
		once := query.Filter(combined, c)
		assert.Equal(t, once, query.Filter(once, c))
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	combined := query.Combine(fixture())
	before := ids(combined)
	_ = query.Filter(combined, query.Criteria{NameText: "gale"})
	assert.Equal(t, before, ids(combined))
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, query.Criteria{}.IsEmpty())
	assert.False(t, query.Criteria{NameText: " "}.IsEmpty())
	assert.False(t, query.Criteria{Status: statusPtr(domain.Pending)}.IsEmpty())
}

func TestSummarize(t *testing.T) {
	combined := query.Combine(fixture())

	s := query.Summarize(combined)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.ByKind[domain.KindTime])
	assert.Equal(t, 2, s.ByKind[domain.KindEquipment])
	assert.Equal(t, 2, s.ByKind[domain.KindMaterial])
	assert.Equal(t, 3, s.Pending())
	assert.Equal(t, 3, s.ByStatus[domain.Approved])
	assert.True(t, s.RegularHours.Equal(decimal.NewFromInt(16)), s.RegularHours.String())
	assert.True(t, s.OvertimeHours.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, s.RunHours.Equal(decimal.NewFromInt(13)))
	require.Len(t, s.Quantities, 2)
	assert.True(t, s.Quantities[domain.Tonnes].Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Quantities[domain.CubicYards].Equal(decimal.NewFromInt(12)))

	pending := query.Summarize(query.Filter(combined, query.Criteria{Status: statusPtr(domain.Pending)}))
	assert.Equal(t, 3, pending.Total)
	assert.Equal(t, 0, pending.ByStatus[domain.Approved])

	empty := query.Summarize(nil)
	assert.Equal(t, 0, empty.Total)
	assert.True(t, empty.RunHours.IsZero())
}
