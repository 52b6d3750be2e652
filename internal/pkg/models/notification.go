package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationFailure is the durable record written when an email could not
// be delivered within the retry budget. The payment itself is unaffected.
type NotificationFailure struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	Reference string           `json:"reference" db:"reference"`
	Recipient string           `json:"recipient" db:"recipient"`
	Kind      NotificationKind `json:"kind" db:"kind"`
	Reason    string           `json:"reason" db:"reason"`
	Attempts  int              `json:"attempts" db:"attempts"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
