package api

import (
	"errors"

	errorvalues "github.com/limbo/azkar/internal/error_values"
)

// Application error codes the mobile clients switch on. The numbering
// is part of the public contract and never changes; new codes only get
// appended. Sentinel errors map onto codes here and nowhere else.
const (
	CodeAuthentication                  = 12
	CodeGroupNotFound                   = 13
	CodeNotGroupMember                  = 14
	CodeChallengeNotFound               = 15
	CodeIncrementingLeftRepetitions     = 17
	CodeNonExistentSubChallenge         = 18
	CodeMissingOrDuplicatedSubChallenge = 19
	CodeChallengeExpired                = 20
	CodeRequiredFieldsNotGiven          = 21
	CodeDefault                         = 22
	CodeUserAlreadyMember               = 24
	CodeUserNotFound                    = 33
	CodePastExpiryDate                  = 40
	CodeMalformedSubChallenges          = 41
	CodeEmptyGroupName                  = 42
)

func errorCode(err error) int {
	switch {
	case errors.Is(err, errorvalues.ErrGroupNotFound):
		return CodeGroupNotFound
	case errors.Is(err, errorvalues.ErrNotGroupMember):
		return CodeNotGroupMember
	case errors.Is(err, errorvalues.ErrChallengeNotFound):
		return CodeChallengeNotFound
	case errors.Is(err, errorvalues.ErrIncrementingLeftRepetitions):
		return CodeIncrementingLeftRepetitions
	case errors.Is(err, errorvalues.ErrNonExistentSubChallenge):
		return CodeNonExistentSubChallenge
	case errors.Is(err, errorvalues.ErrMissingOrDuplicatedSubChallenge):
		return CodeMissingOrDuplicatedSubChallenge
	case errors.Is(err, errorvalues.ErrChallengeExpired):
		return CodeChallengeExpired
	case errors.Is(err, errorvalues.ErrAlreadyMember):
		return CodeUserAlreadyMember
	case errors.Is(err, errorvalues.ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, errorvalues.ErrPastExpiryDate):
		return CodePastExpiryDate
	case errors.Is(err, errorvalues.ErrMalformedSubChallenges):
		return CodeMalformedSubChallenges
	case errors.Is(err, errorvalues.ErrEmptyGroupName):
		return CodeEmptyGroupName
	}
	return CodeDefault
}
