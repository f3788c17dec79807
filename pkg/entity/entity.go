package entity

import (
	"github.com/google/uuid"
)

// PersonalGroupID marks a challenge that belongs to no group.
// Personal challenges never take part in score counting.
var PersonalGroupID = uuid.Nil

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// UserGroup is the membership record of one user in one group.
// TotalScore grows by one every time a challenge of that user in
// that group becomes fully completed.
type UserGroup struct {
	GroupID    uuid.UUID `json:"group_id"`
	TotalScore int       `json:"total_score"`
}

// Group name is empty for auto-generated groups (e.g. a pair group
// created for two friends challenging each other quickly).
type Group struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name,omitempty"`
	CreatorID     uuid.UUID   `json:"creator_id"`
	UsersIDs      []uuid.UUID `json:"users_ids"`
	ChallengesIDs []uuid.UUID `json:"challenges_ids"`
	CreatedAt     int64       `json:"created_at"`
	ModifiedAt    int64       `json:"modified_at"`
}

// MemberScore is one row of a group scoreboard.
type MemberScore struct {
	UserID     uuid.UUID `json:"user_id"`
	TotalScore int       `json:"total_score"`
}

// SubChallenge tracks how many repetitions of one zekr are left to
// perform. Zekr ids are unique within a single challenge.
type SubChallenge struct {
	ZekrID      int `json:"zekr_id"`
	Repetitions int `json:"repetitions"`
}

// Challenge timestamps are epoch seconds. GroupID equal to
// PersonalGroupID means the challenge is personal.
type Challenge struct {
	ID             uuid.UUID      `json:"id"`
	GroupID        uuid.UUID      `json:"group_id"`
	CreatingUserID uuid.UUID      `json:"creating_user_id"`
	Name           string         `json:"name,omitempty"`
	ExpiresAt      int64          `json:"expires_at"`
	CreatedAt      int64          `json:"created_at"`
	ModifiedAt     int64          `json:"modified_at"`
	SubChallenges  []SubChallenge `json:"sub_challenges"`
}

// Personal reports whether the challenge belongs to no group.
func (c *Challenge) Personal() bool {
	return c.GroupID == PersonalGroupID
}
