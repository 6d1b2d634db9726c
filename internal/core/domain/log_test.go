package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Predicates(t *testing.T) {
	tests := []struct {
		name          string
		log           domain.Log
		wantKind      domain.LogKind
		wantTime      bool
		wantEquipment bool
		wantMaterial  bool
	}{
		{
			name:     "time entry",
			log:      domain.NewTimeLog(domain.TimeEntry{EmployeeName: "Gale Hawthorne"}),
			wantKind: domain.KindTime,
			wantTime: true,
		},
		{
			name:          "equipment entry",
			log:           domain.NewEquipmentLog(domain.EquipmentEntry{EquipmentName: "Paver 2"}),
			wantKind:      domain.KindEquipment,
			wantEquipment: true,
		},
		{
			name:         "material entry",
			log:          domain.NewMaterialLog(domain.MaterialEntry{Category: "Gravel"}),
			wantKind:     domain.KindMaterial,
			wantMaterial: true,
		},
		{
			name:     "empty fields still carry the tag",
			log:      domain.NewTimeLog(domain.TimeEntry{}),
			wantKind: domain.KindTime,
			wantTime: true,
		},
		{
			name: "zero log",
			log:  domain.Log{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.log.Kind())
			assert.Equal(t, tt.wantTime, domain.IsTimeEntry(tt.log))
			assert.Equal(t, tt.wantEquipment, domain.IsEquipmentEntry(tt.log))
			assert.Equal(t, tt.wantMaterial, domain.IsMaterialEntry(tt.log))
			assert.Equal(t, tt.wantKind == "", tt.log.IsZero())
		})
	}
}

func TestLog_KindAccessors(t *testing.T) {
	log := domain.NewEquipmentLog(domain.EquipmentEntry{
		EquipmentName: "Paver 2",
		TotalHours:    decimal.NewFromInt(500),
		RunHours:      decimal.NewFromInt(6),
	})

	eq, ok := log.EquipmentEntry()
	require.True(t, ok)
	assert.Equal(t, "Paver 2", eq.EquipmentName)
	assert.True(t, eq.RunHours.Equal(decimal.NewFromInt(6)))

	_, ok = log.TimeEntry()
	assert.False(t, ok)
	_, ok = log.MaterialEntry()
	assert.False(t, ok)

	// Mutating the returned copy must not leak back into the log.
	eq.EquipmentName = "changed"
	again, _ := log.EquipmentEntry()
	assert.Equal(t, "Paver 2", again.EquipmentName)
}

func TestLog_WithEnvelope(t *testing.T) {
	original := domain.NewTimeLog(domain.TimeEntry{
		Envelope:     domain.Envelope{ID: "a", Status: domain.Pending},
		EmployeeName: "Peeta Mellark",
	})

	updated := original.WithEnvelope(domain.Envelope{
		ID:     "b",
		Status: domain.Approved,
		Date:   time.Date(2024, 7, 25, 18, 30, 0, 0, time.UTC),
	})

	assert.Equal(t, "a", original.ID())
	assert.Equal(t, domain.Pending, original.Status())
	assert.Equal(t, "b", updated.ID())
	assert.Equal(t, domain.Approved, updated.Status())
	assert.Equal(t, time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC), updated.Date())

	te, _ := updated.TimeEntry()
	assert.Equal(t, "Peeta Mellark", te.EmployeeName)
}

func TestNormalizeDate(t *testing.T) {
	mdt := time.FixedZone("MDT", -6*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc midnight", time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC), "2024-07-25"},
		{"utc afternoon", time.Date(2024, 7, 25, 15, 4, 5, 0, time.UTC), "2024-07-25"},
		{"local evening crosses into next utc day", time.Date(2024, 7, 25, 20, 0, 0, 0, mdt), "2024-07-26"},
		{"zero", time.Time{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatDate(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2024-07-25")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC), d)

	_, err = domain.ParseDate("07/25/2024")
	assert.Error(t, err)

	assert.True(t, domain.SameDate(d, d.Add(23*time.Hour)))
	assert.False(t, domain.SameDate(d, d.Add(24*time.Hour)))
}

func TestParseStatusAndKind(t *testing.T) {
	s, err := domain.ParseStatus("Approved")
	require.NoError(t, err)
	assert.Equal(t, domain.Approved, s)

	_, err = domain.ParseStatus("Rejected")
	assert.Error(t, err)

	k, err := domain.ParseLogKind("material")
	require.NoError(t, err)
	assert.Equal(t, domain.KindMaterial, k)

	_, err = domain.ParseLogKind("fuel")
	assert.Error(t, err)
}

func TestMaterialVocabulary(t *testing.T) {
	assert.Equal(t, []string{"Asphalt", "Gravel", "Concrete"}, domain.MaterialCategories())
	assert.True(t, domain.IsValidSubcategory("Gravel", "25mm GBC"))
	assert.True(t, domain.IsValidSubcategory("Asphalt", "City A"))
	assert.False(t, domain.IsValidSubcategory("Asphalt", "25mm GBC"))
	assert.False(t, domain.IsValidSubcategory("Sand", "Fine"))
	assert.Nil(t, domain.SubcategoriesOf("Sand"))
	assert.False(t, domain.IsKnownCategory("Sand"))

	subs := domain.SubcategoriesOf("Concrete")
	subs[0] = "mutated"
	assert.Equal(t, []string{"Type 1", "Type 2"}, domain.SubcategoriesOf("Concrete"))

	assert.Equal(t, "cubic yards", domain.CubicYards.Label())
	assert.False(t, domain.UnitOfMeasure("litres").IsValid())
}
