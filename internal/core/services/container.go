package services

import (
	"context"

	portsrepo "github.com/SscSPs/field_ops_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/field_ops_app/internal/core/ports/services"
	"github.com/SscSPs/field_ops_app/internal/core/query"
)

// Container holds all the services of one session and the store they share.
type Container struct {
	Review   portssvc.ReviewSvcFacade
	notifier portsrepo.LogNotifier
}

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos portsrepo.RepositoryProvider) *Container {
	return &Container{
		Review:   NewReviewService(repos.LogRepo),
		notifier: repos.LogRepo,
	}
}

// NewDashboard opens a dashboard view that follows the container's store.
func (c *Container) NewDashboard(ctx context.Context, criteria query.Criteria) (*Dashboard, error) {
	return NewDashboard(ctx, c.Review, c.notifier, criteria)
}
