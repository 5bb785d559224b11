package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"eventticketing/internal/domain"
)

// maxTokenAttempts bounds retries when a freshly issued token collides with an existing one.
const maxTokenAttempts = 3

const inviteeColumns = `id, event_id, email, invite_token, has_accessed, accessed_at, created_at`

// rowQueryer is satisfied by both *sql.DB and *sql.Tx.
type rowQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

type inviteeRepository struct {
	DB     *sql.DB
	tokens domain.InviteTokenIssuer
}

// NewInviteeRepository returns an InviteeRepository that mints invite tokens with tokens.
func NewInviteeRepository(db *sql.DB, tokens domain.InviteTokenIssuer) domain.InviteeRepository {
	return &inviteeRepository{
		DB:     db,
		tokens: tokens,
	}
}

func scanInvitee(row rowScanner, extra ...any) (*domain.Invitee, error) {
	inv := &domain.Invitee{}
	var accessedAt sql.NullTime
	dest := append([]any{&inv.ID, &inv.EventID, &inv.Email, &inv.InviteToken, &inv.HasAccessed, &accessedAt, &inv.CreatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if accessedAt.Valid {
		inv.AccessedAt = &accessedAt.Time
	}
	return inv, nil
}

// insertInviteeIfAbsent inserts an invitee for (eventID, email) unless the pair exists.
// ON CONFLICT without a target swallows both the pair and the token constraint, so a
// missing row with no existing pair means the token collided and a new one is tried.
// No statement fails on conflict, which keeps this usable inside a transaction.
func insertInviteeIfAbsent(ctx context.Context, q rowQueryer, tokens domain.InviteTokenIssuer, eventID, email string) (*domain.Invitee, bool, error) {
	email = domain.NormalizeEmail(email)
	insert := `
		INSERT INTO invitees (event_id, email, invite_token)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
		RETURNING ` + inviteeColumns
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := tokens.Issue()
		if err != nil {
			return nil, false, err
		}
		inv, err := scanInvitee(q.QueryRowContext(ctx, insert, eventID, email, token))
		if err == nil {
			return inv, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, err
		}
		existing, err := findInviteeByEventAndEmail(ctx, q, eventID, email)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
	}
	return nil, false, fmt.Errorf("invite token collided %d times", maxTokenAttempts)
}

func findInviteeByEventAndEmail(ctx context.Context, q rowQueryer, eventID, email string) (*domain.Invitee, error) {
	query := `SELECT ` + inviteeColumns + ` FROM invitees WHERE event_id = $1 AND email = $2`
	inv, err := scanInvitee(q.QueryRowContext(ctx, query, eventID, domain.NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *inviteeRepository) UpsertIfAbsent(ctx context.Context, eventID, email string) (*domain.Invitee, bool, error) {
	return insertInviteeIfAbsent(ctx, r.DB, r.tokens, eventID, email)
}

func (r *inviteeRepository) FindByToken(ctx context.Context, token string) (*domain.Invitee, error) {
	query := `SELECT ` + inviteeColumns + ` FROM invitees WHERE invite_token = $1`
	inv, err := scanInvitee(r.DB.QueryRowContext(ctx, query, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *inviteeRepository) FindByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Invitee, error) {
	return findInviteeByEventAndEmail(ctx, r.DB, eventID, email)
}

func (r *inviteeRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Invitee, error) {
	query := `
		SELECT i.id, i.event_id, i.email, i.invite_token, i.has_accessed, i.accessed_at, i.created_at,
		       COUNT(r.id) AS referred_count
		FROM invitees i
		LEFT JOIN registrations r ON r.referred_by_invitee_id = i.id
		WHERE i.event_id = $1
		GROUP BY i.id
		ORDER BY i.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invitees := make([]*domain.Invitee, 0)
	for rows.Next() {
		var referred int
		inv, err := scanInvitee(rows, &referred)
		if err != nil {
			return nil, err
		}
		inv.ReferredCount = referred
		invitees = append(invitees, inv)
	}
	return invitees, rows.Err()
}

func (r *inviteeRepository) ListForResend(ctx context.Context, eventID string, filter domain.ResendFilter) ([]*domain.Invitee, error) {
	query := `SELECT ` + inviteeColumns + ` FROM invitees WHERE event_id = $1`
	args := []any{eventID}
	switch {
	case len(filter.InviteeIDs) > 0:
		query += ` AND id = ANY($2)`
		args = append(args, pq.Array(onlyUUIDs(filter.InviteeIDs)))
	case len(filter.Emails) > 0:
		emails := make([]string, len(filter.Emails))
		for i, e := range filter.Emails {
			emails[i] = domain.NormalizeEmail(e)
		}
		query += ` AND email = ANY($2)`
		args = append(args, pq.Array(emails))
	}
	query += ` ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invitees := make([]*domain.Invitee, 0)
	for rows.Next() {
		inv, err := scanInvitee(rows)
		if err != nil {
			return nil, err
		}
		invitees = append(invitees, inv)
	}
	return invitees, rows.Err()
}

func (r *inviteeRepository) MarkAccessed(ctx context.Context, inviteeID string, at time.Time) error {
	query := `
		UPDATE invitees
		SET has_accessed = TRUE, accessed_at = $2
		WHERE id = $1 AND has_accessed = FALSE
	`
	_, err := r.DB.ExecContext(ctx, query, inviteeID, at)
	return err
}

func (r *inviteeRepository) DeleteMany(ctx context.Context, eventID string, ids []string) (int64, error) {
	ids = onlyUUIDs(ids)
	if len(ids) == 0 || !isUUID(eventID) {
		return 0, nil
	}
	query := `DELETE FROM invitees WHERE event_id = $1 AND id = ANY($2)`
	result, err := r.DB.ExecContext(ctx, query, eventID, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
