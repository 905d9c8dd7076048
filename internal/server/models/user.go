// Server-side user model
package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription tiers. Tracked on the account, not metered anywhere.
const (
	TierFree  = "free"
	TierPro   = "pro"
	TierElite = "elite"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Subscription string
	CreatedAt    time.Time
}
