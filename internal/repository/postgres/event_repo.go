package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventticketing/internal/domain"
)

const eventColumns = `id, owner_id, title, description, starts_at, location, status, created_at, updated_at`

type eventRepository struct {
	DB     *sql.DB
	tokens domain.InviteTokenIssuer
}

// NewEventRepository returns an EventRepository. tokens mints invite tokens for
// invitees created together with an event.
func NewEventRepository(db *sql.DB, tokens domain.InviteTokenIssuer) domain.EventRepository {
	return &eventRepository{
		DB:     db,
		tokens: tokens,
	}
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var startsAt sql.NullTime
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Description, &startsAt, &e.Location, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if startsAt.Valid {
		e.StartsAt = &startsAt.Time
	}
	return e, nil
}

const insertEventSQL = `
	INSERT INTO events (owner_id, title, description, starts_at, location, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id
`

func insertEvent(ctx context.Context, q rowQueryer, e *domain.Event) error {
	return q.QueryRowContext(ctx, insertEventSQL,
		e.OwnerID, e.Title, e.Description, e.StartsAt, e.Location, string(e.Status), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	return insertEvent(ctx, r.DB, e)
}

func (r *eventRepository) CreateWithInvitees(ctx context.Context, e *domain.Event, emails []string) (items []*domain.InviteItem, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertEvent(ctx, tx, e); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	items = make([]*domain.InviteItem, 0, len(emails))
	for _, email := range emails {
		inv, created, ierr := insertInviteeIfAbsent(ctx, tx, r.tokens, e.ID, email)
		if ierr != nil {
			err = fmt.Errorf("insert invitee: %w", ierr)
			return nil, err
		}
		item := &domain.InviteItem{Email: domain.NormalizeEmail(email), Invitee: inv, Outcome: domain.InviteOutcomeCreated}
		if !created {
			item.Outcome = domain.InviteOutcomeAlreadyInvited
			item.Reason = "already invited"
		}
		items = append(items, item)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return items, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
