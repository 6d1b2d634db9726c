package seed_test

import (
	"context"
	"testing"

	"github.com/SscSPs/field_ops_app/internal/adapters/memory"
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	portsrepo "github.com/SscSPs/field_ops_app/internal/core/ports/repositories"
	"github.com/SscSPs/field_ops_app/internal/core/query"
	"github.com/SscSPs/field_ops_app/internal/core/services"
	"github.com/SscSPs/field_ops_app/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDemoData(t *testing.T) {
	ctx := context.Background()
	container := services.NewContainer(portsrepo.RepositoryProvider{LogRepo: memory.NewLogRepository()})

	count, err := seed.LoadDemoData(ctx, container.Review)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	summary, err := container.Review.Summarize(ctx, query.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 3, summary.ByStatus[domain.Approved])
	assert.Equal(t, 2, summary.ByKind[domain.KindTime])

	times, err := container.Review.ListTimeEntries(ctx)
	require.NoError(t, err)
	require.Len(t, times, 2)
	assert.Equal(t, "Milling Crew 2", times[1].EmployeeName)
	assert.Equal(t, domain.Pending, times[1].Status)
}
