package services

import (
	"context"
	"time"

	"github.com/yigit/contractors/internal/app/models"
	"github.com/yigit/contractors/internal/app/repositories"
)

// Services defined in this package:
// - ContractorService: list, detail and department lookups
// - StatsService: aggregate head counts

// ContractorStore is the persistence surface ContractorService depends on.
type ContractorStore interface {
	List(ctx context.Context, filter repositories.ContractorFilter, page repositories.Page) ([]models.ContractorSummary, int64, error)
	GetDetail(ctx context.Context, id int64) (*models.ContractorDetail, error)
	Departments(ctx context.Context) ([]string, error)
}

// StatsStore is the persistence surface StatsService depends on.
type StatsStore interface {
	Stats(ctx context.Context) (*models.ContractorStats, error)
}

// Options tune service behaviour from configuration.
type Options struct {
	// QueryTimeout bounds every service call; zero disables the bound.
	QueryTimeout time.Duration
	// CaseInsensitiveSearch switches keyword matching to ILIKE.
	CaseInsensitiveSearch bool
}

// Services groups every service of the application.
type Services struct {
	ContractorService ContractorService
	StatsService      StatsService
}

// NewServices wires the services onto the repositories.
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	return &Services{
		ContractorService: NewContractorService(repos.ContractorRepository, opts),
		StatsService:      NewStatsService(repos.StatsRepository, opts),
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
