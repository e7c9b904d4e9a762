package sentence

import "time"

// spacingDays returns the review interval in days for a sentence with the
// given practice count. Pure function: no DB, no clock.
//
// Difficult sentences always come back after DifficultSpacingDays; the
// rest graduate with xp: every two practices add a day, clamped to
// [MinSpacingDays, MaxSpacingDays].
func spacingDays(xp int, difficult bool, cfg Config) int {
	if difficult {
		return cfg.DifficultSpacingDays
	}
	days := xp / 2
	if days < cfg.MinSpacingDays {
		days = cfg.MinSpacingDays
	}
	if days > cfg.MaxSpacingDays {
		days = cfg.MaxSpacingDays
	}
	return days
}

// nextDueAt returns the next review timestamp from now.
func nextDueAt(now time.Time, xp int, difficult bool, cfg Config) time.Time {
	return now.Add(time.Duration(spacingDays(xp, difficult, cfg)) * 24 * time.Hour)
}
