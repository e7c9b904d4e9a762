package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslationQuota counts external translation calls for one user on one
// calendar day. Keying on the day makes the reset implicit; old rows are
// never purged.
type TranslationQuota struct {
	UserID uuid.UUID
	Day    time.Time
	Count  int
}

// QuotaDay truncates t to the calendar day used as the quota key (UTC).
func QuotaDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
