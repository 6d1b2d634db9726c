package domain

import "slices"

// UnitOfMeasure is the unit a material quantity is delivered in.
type UnitOfMeasure string

const (
	Tonnes     UnitOfMeasure = "tonnes"
	CubicYards UnitOfMeasure = "cubic_yards"
)

// IsValid reports whether u is a known unit.
func (u UnitOfMeasure) IsValid() bool {
	return u == Tonnes || u == CubicYards
}

// Label renders the unit for display.
func (u UnitOfMeasure) Label() string {
	if u == CubicYards {
		return "cubic yards"
	}
	return string(u)
}

// materialCategories is the fixed category -> subcategory vocabulary.
var materialCategories = map[string][]string{
	"Asphalt":  {"City A", "City B", "City C", "Comm B"},
	"Gravel":   {"25mm GBC", "80mm GBC", "40mm drain", "20mm drain"},
	"Concrete": {"Type 1", "Type 2"},
}

var categoryOrder = []string{"Asphalt", "Gravel", "Concrete"}

// Suppliers lists the suppliers offered on the material form.
var Suppliers = []string{"Lafarge", "Burnco", "Hillstone", "Sarcee", "Other"}

// MaterialCategories returns the known categories in display order.
func MaterialCategories() []string {
	return slices.Clone(categoryOrder)
}

// SubcategoriesOf returns the vocabulary for category, or nil if unknown.
func SubcategoriesOf(category string) []string {
	subs, ok := materialCategories[category]
	if !ok {
		return nil
	}
	return slices.Clone(subs)
}

// IsKnownCategory reports whether category has a vocabulary.
func IsKnownCategory(category string) bool {
	_, ok := materialCategories[category]
	return ok
}

// IsValidSubcategory reports whether subcategory belongs to category's vocabulary.
func IsValidSubcategory(category, subcategory string) bool {
	return slices.Contains(materialCategories[category], subcategory)
}
