package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/field_ops_app/internal/adapters/memory"
	"github.com/SscSPs/field_ops_app/internal/apperrors"
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/field_ops_app/internal/core/ports/repositories"
	"github.com/SscSPs/field_ops_app/internal/core/query"
	"github.com/SscSPs/field_ops_app/internal/core/services"
	"github.com/SscSPs/field_ops_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// WorkflowTestSuite drives the review workflow against the in-memory store.
type WorkflowTestSuite struct {
	suite.Suite
	ctx       context.Context
	repo      *memory.LogRepository
	container *services.Container
}

func (suite *WorkflowTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = memory.NewLogRepository()
	suite.container = services.NewContainer(portsrepo.RepositoryProvider{LogRepo: suite.repo})
}

func (suite *WorkflowTestSuite) submit(fields dto.LogFields) domain.Log {
	log, err := suite.container.Review.Submit(suite.ctx, fields)
	suite.Require().NoError(err)
	suite.Require().NotNil(log)
	return *log
}

func (suite *WorkflowTestSuite) submitTime(name, job string) domain.Log {
	return suite.submit(&dto.TimeEntryFields{
		EmployeeName: name, Date: "2024-07-25", JobName: job,
		RegularHours: decimal.NewFromInt(8),
	})
}

func (suite *WorkflowTestSuite) all() []domain.Log {
	logs, err := suite.container.Review.GetCombinedFiltered(suite.ctx, query.Criteria{})
	suite.Require().NoError(err)
	return logs
}

func (suite *WorkflowTestSuite) TestNameFilterIsCaseInsensitive() {
	suite.submitTime("John Gale", "Deerfoot Trail Overlay")
	suite.submitTime("Paving Crew 1", "Crowchild Interchange")
	suite.submit(&dto.EquipmentEntryFields{EquipmentName: "Paver 2", Date: "2024-07-25"})

	logs, err := suite.container.Review.GetCombinedFiltered(suite.ctx, query.Criteria{NameText: "gale"})

	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	entry, ok := logs[0].TimeEntry()
	suite.Require().True(ok)
	suite.Equal("John Gale", entry.EmployeeName)
}

func (suite *WorkflowTestSuite) TestApproveThenEditKeepsApproved() {
	paver := suite.submit(&dto.EquipmentEntryFields{
		EquipmentName: "Paver 2", Date: "2024-07-25",
		TotalHours: decimal.NewFromInt(900), RunHours: decimal.NewFromInt(7),
	})
	suite.Require().NoError(suite.container.Review.Approve(suite.ctx, paver.ID()))

	stored, err := suite.container.Review.GetLog(suite.ctx, paver.ID())
	suite.Require().NoError(err)
	fields := dto.FieldsFromLog(*stored).(*dto.EquipmentEntryFields)
	fields.RunHours = decimal.NewFromInt(9)
	fields.Notes = "hydraulic leak"
	edited, err := fields.ToDomain()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.container.Review.SaveEdit(suite.ctx, edited))

	equipment, err := suite.container.Review.ListEquipmentEntries(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(equipment, 1)
	suite.Equal(domain.Approved, equipment[0].Status)
	suite.True(equipment[0].RunHours.Equal(decimal.NewFromInt(9)))
	suite.Equal("hydraulic leak", equipment[0].Notes)
	suite.Equal(paver.ID(), equipment[0].ID)
}

func (suite *WorkflowTestSuite) TestMismatchedSubcategoryIsRejected() {
	log, err := suite.container.Review.Submit(suite.ctx, &dto.MaterialEntryFields{
		Date: "2024-07-25", Category: "Asphalt", Subcategory: "25mm GBC",
		Supplier: "Lafarge", UnitOfMeasure: domain.Tonnes, Quantity: decimal.NewFromInt(40),
	})

	suite.Nil(log)
	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Require().Len(verr.Invalid, 1)
	suite.Equal("subcategory", verr.Invalid[0].Field)
	suite.Empty(suite.all())
}

func (suite *WorkflowTestSuite) TestMissingFieldsAreReported() {
	_, err := suite.container.Review.Submit(suite.ctx, &dto.MaterialEntryFields{
		Date: "2024-07-25", Category: "Gravel", Subcategory: "25mm GBC",
	})

	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.ElementsMatch([]string{"supplier", "unitOfMeasure", "quantity"}, verr.Missing)
	suite.Empty(suite.all())
}

func (suite *WorkflowTestSuite) TestApproveUnknownIDLeavesDataUnchanged() {
	suite.submitTime("John Gale", "Deerfoot Trail Overlay")
	before := suite.all()

	suite.NoError(suite.container.Review.Approve(suite.ctx, "nonexistent-id"))

	suite.Equal(before, suite.all())
}

func (suite *WorkflowTestSuite) TestSaveEditUnknownIDIsNoop() {
	suite.submitTime("John Gale", "Deerfoot Trail Overlay")
	before := suite.all()

	ghost, err := dto.TimeEntryFields{ID: "tc-ghost", EmployeeName: "Nobody", Date: "2024-07-26", JobName: "None"}.ToDomain()
	suite.Require().NoError(err)
	suite.NoError(suite.container.Review.SaveEdit(suite.ctx, ghost))

	suite.Equal(before, suite.all())
}

func (suite *WorkflowTestSuite) TestEquipmentWithZeroHoursIsAccepted() {
	log := suite.submit(&dto.EquipmentEntryFields{EquipmentName: "Skid Steer 3", Date: "2024-07-25"})

	e, ok := log.EquipmentEntry()
	suite.Require().True(ok)
	suite.True(e.TotalHours.IsZero())
	suite.True(e.RunHours.IsZero())
	suite.Equal(domain.Pending, log.Status())
}

func (suite *WorkflowTestSuite) TestSummarizeMatchesFilteredRecords() {
	suite.submitTime("John Gale", "Deerfoot Trail Overlay")
	crew := suite.submit(&dto.TimeEntryFields{
		EmployeeName: "Milling Crew 2", Date: "2024-07-25", JobName: "Crowchild Interchange Rehab",
		RegularHours: decimal.NewFromInt(8), OvertimeHours: decimal.NewFromFloat(1.5),
	})
	suite.submit(&dto.MaterialEntryFields{
		Date: "2024-07-25", Category: "Asphalt", Subcategory: "City A",
		Supplier: "Lafarge", UnitOfMeasure: domain.Tonnes, Quantity: decimal.NewFromInt(100),
	})
	suite.Require().NoError(suite.container.Review.Approve(suite.ctx, crew.ID()))

	all, err := suite.container.Review.Summarize(suite.ctx, query.Criteria{})
	suite.Require().NoError(err)
	suite.Equal(3, all.Total)
	suite.Equal(2, all.Pending())
	suite.True(all.RegularHours.Equal(decimal.NewFromInt(16)))
	suite.True(all.OvertimeHours.Equal(decimal.NewFromFloat(1.5)))
	suite.True(all.Quantities[domain.Tonnes].Equal(decimal.NewFromInt(100)))

	approved := domain.Approved
	onlyApproved, err := suite.container.Review.Summarize(suite.ctx, query.Criteria{Status: &approved})
	suite.Require().NoError(err)
	suite.Equal(1, onlyApproved.Total)
	suite.Equal(1, onlyApproved.ByKind[domain.KindTime])
}

func (suite *WorkflowTestSuite) TestDashboardFollowsStoreChanges() {
	pending := domain.Pending
	dash, err := suite.container.NewDashboard(suite.ctx, query.Criteria{Status: &pending})
	suite.Require().NoError(err)
	defer dash.Close()
	suite.Empty(dash.Logs())

	gale := suite.submitTime("John Gale", "Deerfoot Trail Overlay")
	suite.Require().Len(dash.Logs(), 1)
	suite.Equal(1, dash.Summary().Pending())

	suite.Require().NoError(suite.container.Review.Approve(suite.ctx, gale.ID()))
	suite.Empty(dash.Logs())

	suite.Require().NoError(dash.SetCriteria(query.Criteria{}))
	suite.Require().Len(dash.Logs(), 1)
	suite.Equal(domain.Approved, dash.Logs()[0].Status())
	suite.NoError(dash.Err())
}

func (suite *WorkflowTestSuite) TestDashboardCloseStopsUpdates() {
	dash, err := suite.container.NewDashboard(suite.ctx, query.Criteria{})
	suite.Require().NoError(err)

	suite.submitTime("John Gale", "Deerfoot Trail Overlay")
	suite.Len(dash.Logs(), 1)

	dash.Close()
	dash.Close()
	suite.submitTime("Paving Crew 1", "Crowchild Interchange")
	suite.Len(dash.Logs(), 1)
}

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}
