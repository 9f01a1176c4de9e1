package model

import "time"

type User struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	AvatarURL        *string    `json:"avatar_url,omitempty"`
	DODVerifiedAt    *time.Time `json:"dod_verified_at,omitempty"`
	FamilyVerifiedAt *time.Time `json:"family_verified_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// IsVerifiedSponsor reports whether the user has completed DoD verification
// and is therefore eligible to sponsor a family member.
func (u *User) IsVerifiedSponsor() bool {
	return u.DODVerifiedAt != nil
}
