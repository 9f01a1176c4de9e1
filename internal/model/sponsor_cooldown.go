package model

import "time"

// SponsorCooldown blocks a sponsor from approving a new request until
// CooldownUntil passes. One row per sponsor; a new revocation overwrites it.
type SponsorCooldown struct {
	ID            int64     `json:"id"`
	SponsorID     int64     `json:"sponsor_id"`
	CooldownUntil time.Time `json:"cooldown_until"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c *SponsorCooldown) Active() bool {
	return time.Now().Before(c.CooldownUntil)
}
