package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/amandzaa/TiketQ-preVI/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

func (r *TicketRepository) Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	const stmt = `
INSERT INTO tickets (event_name, location, event_time, is_used)
VALUES ($1, $2, $3, $4)
RETURNING id`

	err := r.pool.QueryRow(ctx, stmt,
		ticket.EventName,
		ticket.Location,
		ticket.Time,
		ticket.IsUsed,
	).Scan(&ticket.ID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}
	return ticket, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (domain.Ticket, error) {
	const query = `
SELECT id, event_name, location, event_time, is_used
FROM tickets
WHERE id = $1`

	var t domain.Ticket
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.EventName, &t.Location, &t.Time, &t.IsUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Ticket{}, domain.ErrTicketNotFound
		}
		return domain.Ticket{}, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// List returns tickets in insertion order (primary key ascending). A nil
// filter value returns every ticket.
func (r *TicketRepository) List(ctx context.Context, filter domain.TicketFilter) ([]domain.Ticket, error) {
	query := `
SELECT id, event_name, location, event_time, is_used
FROM tickets`
	args := []any{}
	if filter.IsUsed != nil {
		query += ` WHERE is_used = $1`
		args = append(args, *filter.IsUsed)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.EventName, &t.Location, &t.Time, &t.IsUsed); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate tickets: %w", rows.Err())
	}
	return tickets, nil
}

func (r *TicketRepository) SetUsed(ctx context.Context, id int64, isUsed bool) (domain.Ticket, error) {
	const stmt = `
UPDATE tickets
SET is_used = $2
WHERE id = $1
RETURNING id, event_name, location, event_time, is_used`

	var t domain.Ticket
	err := r.pool.QueryRow(ctx, stmt, id, isUsed).
		Scan(&t.ID, &t.EventName, &t.Location, &t.Time, &t.IsUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Ticket{}, domain.ErrTicketNotFound
		}
		return domain.Ticket{}, fmt.Errorf("update ticket: %w", err)
	}
	return t, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	const stmt = `DELETE FROM tickets WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}
