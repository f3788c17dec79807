package service

import (
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/azkar/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
	})
}

// validateNewChallenge rejects challenges that are already expired or
// whose sub-challenge list is unusable: empty, repeating a zekr id, or
// asking for a non-positive repetition count.
func validateNewChallenge(req *AddChallengeRequest, now time.Time) error {
	if req.ExpiresAt <= now.Unix() {
		return errorvalues.ErrPastExpiryDate
	}
	if len(req.SubChallenges) == 0 {
		return errorvalues.ErrMalformedSubChallenges
	}
	zekrIDs := make(map[int]struct{}, len(req.SubChallenges))
	for _, sub := range req.SubChallenges {
		if sub.Repetitions <= 0 {
			return errorvalues.ErrMalformedSubChallenges
		}
		if _, ok := zekrIDs[sub.ZekrID]; ok {
			return errorvalues.ErrMalformedSubChallenges
		}
		zekrIDs[sub.ZekrID] = struct{}{}
	}
	return nil
}
