// Package seed loads the sample records a fresh session starts with.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/field_ops_app/internal/core/ports/services"
	"github.com/SscSPs/field_ops_app/internal/dto"
	"github.com/SscSPs/field_ops_app/internal/platform/logging"
	"github.com/shopspring/decimal"
)

const demoDate = "2024-07-25"

type demoRecord struct {
	fields   dto.LogFields
	approved bool
}

func demoRecords() []demoRecord {
	return []demoRecord{
		{fields: &dto.TimeEntryFields{
			EmployeeName:  "Paving Crew 1",
			Date:          demoDate,
			JobName:       "Deerfoot Trail Overlay",
			RegularHours:  decimal.NewFromInt(8),
			OvertimeHours: decimal.Zero,
		}, approved: true},
		{fields: &dto.TimeEntryFields{
			EmployeeName:  "Milling Crew 2",
			Date:          demoDate,
			JobName:       "Crowchild Interchange Rehab",
			RegularHours:  decimal.NewFromInt(8),
			OvertimeHours: decimal.NewFromFloat(1.5),
		}},
		{fields: &dto.EquipmentEntryFields{
			EquipmentName: "Paver 1",
			Date:          demoDate,
			TotalHours:    decimal.NewFromInt(1234),
			RunHours:      decimal.NewFromInt(8),
		}, approved: true},
		{fields: &dto.MaterialEntryFields{
			Date:          demoDate,
			Category:      "Asphalt",
			Subcategory:   "City A",
			Supplier:      "Lafarge",
			UnitOfMeasure: "tonnes",
			Quantity:      decimal.NewFromInt(100),
		}, approved: true},
	}
}

// LoadDemoData submits the sample records through svc and approves the ones
// marked approved. It returns the number of records created.
func LoadDemoData(ctx context.Context, svc portssvc.ReviewSvcFacade) (int, error) {
	logger := logging.FromContext(ctx)
	count := 0
	for _, rec := range demoRecords() {
		log, err := svc.Submit(ctx, rec.fields)
		if err != nil {
			return count, fmt.Errorf("failed to seed %s log: %w", rec.fields.Kind(), err)
		}
		count++
		if !rec.approved {
			continue
		}
		if err := svc.Approve(ctx, log.ID()); err != nil {
			return count, fmt.Errorf("failed to approve seeded log %s: %w", log.ID(), err)
		}
	}
	logger.Info("Demo data loaded", slog.Int("count", count))
	return count, nil
}
