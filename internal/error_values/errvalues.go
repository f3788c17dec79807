package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrGroupNotFound  = errors.New("group doesn't exist")
	ErrNotGroupMember = errors.New("user is not a member of the group")
	ErrAlreadyMember  = errors.New("user is already a member of the group")
	ErrEmptyGroupName = errors.New("group name is empty")

	ErrChallengeNotFound      = errors.New("challenge doesn't exist")
	ErrChallengeExpired       = errors.New("challenge is already expired")
	ErrPastExpiryDate         = errors.New("challenge expiry date is in the past")
	ErrMalformedSubChallenges = errors.New("sub-challenges are empty or contain duplicated zekr ids")

	// Progress update rejections
	ErrMissingOrDuplicatedSubChallenge = errors.New("submitted sub-challenges don't cover the challenge exactly")
	ErrNonExistentSubChallenge         = errors.New("submitted sub-challenge doesn't exist in the challenge")
	ErrIncrementingLeftRepetitions     = errors.New("left repetitions can only decrease")

	// ErrMembershipMissing means a completed group challenge has no
	// membership row to put the score on. That is data corruption,
	// not a user mistake.
	ErrMembershipMissing = errors.New("no membership record for scored group")
)
