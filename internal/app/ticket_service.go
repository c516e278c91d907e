package app

import (
	"context"

	"github.com/amandzaa/TiketQ-preVI/internal/clock"
	"github.com/amandzaa/TiketQ-preVI/internal/domain"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (domain.Ticket, error)
	List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error)
	SetUsed(ctx context.Context, id int64, isUsed bool) (domain.Ticket, error)
	Delete(ctx context.Context, id int64) error
}

type TicketService struct {
	repo  TicketRepository
	clock clock.Clock
}

func NewTicketService(repo TicketRepository, clk clock.Clock) *TicketService {
	return &TicketService{
		repo:  repo,
		clock: clk,
	}
}

func (s *TicketService) List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	return s.repo.List(ctx, filter)
}

func (s *TicketService) Get(ctx context.Context, id int64) (domain.Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the raw payload and persists a new ticket. Validation
// failures are reported before the repository is touched, so a rejected
// payload never causes a partial write.
func (s *TicketService) Create(ctx context.Context, payload map[string]any) (domain.Ticket, error) {
	in, verr := ValidateCreate(payload, s.clock.Now())
	if verr != nil {
		return domain.Ticket{}, verr
	}

	ticket := domain.Ticket{
		EventName: in.EventName,
		Location:  in.Location,
		Time:      in.Time,
		IsUsed:    in.IsUsed,
	}
	return s.repo.Create(ctx, ticket)
}

// SetUsed marks a ticket used or unused. Only isUsed is mutable; every
// other field keeps its created value.
func (s *TicketService) SetUsed(ctx context.Context, id int64, payload map[string]any) (domain.Ticket, error) {
	isUsed, verr := ValidateUpdate(payload)
	if verr != nil {
		return domain.Ticket{}, verr
	}
	return s.repo.SetUsed(ctx, id, isUsed)
}

func (s *TicketService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
