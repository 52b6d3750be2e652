package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// NotificationRepo is the sqlx-backed store for undeliverable notifications
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}

// RecordFailure inserts a durable record of an email that could not be
// delivered within the retry budget
func (r *NotificationRepo) RecordFailure(ctx context.Context, failure *models.NotificationFailure) error {
	query := `
		INSERT INTO notification_failures (
			id, reference, recipient, kind, reason, attempts, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if failure.ID == uuid.Nil {
		failure.ID = uuid.New()
	}
	failure.CreatedAt = time.Now()

	_, err := r.db.ExecContext(
		ctx,
		query,
		failure.ID,
		failure.Reference,
		failure.Recipient,
		failure.Kind,
		failure.Reason,
		failure.Attempts,
		failure.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record notification failure for %s: %w", failure.Reference, err)
	}

	return nil
}
