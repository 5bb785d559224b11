package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventticketing/internal/domain"
)

const uniqueViolation = "23505"

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) (bool, error) {
	reg.Email = domain.NormalizeEmail(reg.Email)
	query := `
		INSERT INTO registrations (event_id, name, email, referred_by_invitee_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.EventID, reg.Name, reg.Email, reg.ReferredByInviteeID, reg.CreatedAt).
		Scan(&reg.ID)
	if err == nil {
		return true, nil
	}
	if !isUniqueViolation(err) {
		return false, err
	}
	existing, err := r.GetByEventAndEmail(ctx, reg.EventID, reg.Email)
	if err != nil {
		return false, err
	}
	*reg = *existing
	return false, nil
}

func (r *registrationRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error) {
	query := `
		SELECT id, event_id, name, email, referred_by_invitee_id, created_at
		FROM registrations
		WHERE event_id = $1 AND email = $2
	`
	reg := &domain.Registration{}
	var referredBy sql.NullString
	err := r.DB.QueryRowContext(ctx, query, eventID, domain.NormalizeEmail(email)).
		Scan(&reg.ID, &reg.EventID, &reg.Name, &reg.Email, &referredBy, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if referredBy.Valid {
		reg.ReferredByInviteeID = &referredBy.String
	}
	return reg, nil
}
