// Package reconcile merges a client-reported progress update into the
// server-side sub-challenge list of one challenge. Repetition counters
// can only go down; the submitted list has to cover exactly the same
// set of zekr ids the challenge already has.
package reconcile

import (
	"log/slog"

	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/pkg/entity"
)

type Reconciler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		logger: logger,
	}
}

// FindSubChallenge looks up the entry with the given zekr id. Returns
// a pointer into subs so the caller's writes land in the list, or nil
// when there is no such entry.
func FindSubChallenge(subs []entity.SubChallenge, zekrID int) *entity.SubChallenge {
	for i := range subs {
		if subs[i].ZekrID == zekrID {
			return &subs[i]
		}
	}
	return nil
}

// Completed reports whether every sub-challenge has zero repetitions
// left. An empty list counts as completed.
func Completed(subs []entity.SubChallenge) bool {
	for _, sub := range subs {
		if sub.Repetitions != 0 {
			return false
		}
	}
	return true
}

// applySubChallenge writes the submitted repetitions count onto sub.
// A count larger than the stored one is rejected: clients report done
// work, they never get repetitions back. A negative count is malformed
// client input and is clamped to zero instead of rejected.
func (r *Reconciler) applySubChallenge(sub *entity.SubChallenge, newRepetitions int) error {
	if newRepetitions > sub.Repetitions {
		return errorvalues.ErrIncrementingLeftRepetitions
	}
	if newRepetitions < 0 {
		r.logger.Warn("challenge update with negative left repetitions",
			slog.Int("zekr_id", sub.ZekrID),
			slog.Int("repetitions", newRepetitions),
		)
		newRepetitions = 0
	}
	sub.Repetitions = newRepetitions
	return nil
}

// Reconcile validates newSubs against old and returns the updated
// sub-challenge list. old is never modified: updates are applied to a
// staged copy, so on any error the authoritative list stays untouched
// and nothing partial can leak to storage.
//
// Checks run in this order and the first failure wins:
//  1. both lists have the same length, otherwise
//     ErrMissingOrDuplicatedSubChallenge;
//  2. every submitted entry matches an existing zekr id
//     (ErrNonExistentSubChallenge) and passes applySubChallenge;
//  3. the submitted zekr ids are distinct and cover the whole list,
//     otherwise ErrMissingOrDuplicatedSubChallenge.
func (r *Reconciler) Reconcile(old, newSubs []entity.SubChallenge) ([]entity.SubChallenge, error) {
	if len(newSubs) != len(old) {
		return nil, errorvalues.ErrMissingOrDuplicatedSubChallenge
	}
	staged := make([]entity.SubChallenge, len(old))
	copy(staged, old)
	newZekrIDs := make(map[int]struct{}, len(newSubs))
	for _, newSub := range newSubs {
		newZekrIDs[newSub.ZekrID] = struct{}{}
		sub := FindSubChallenge(staged, newSub.ZekrID)
		if sub == nil {
			return nil, errorvalues.ErrNonExistentSubChallenge
		}
		if err := r.applySubChallenge(sub, newSub.Repetitions); err != nil {
			return nil, err
		}
	}
	if len(newZekrIDs) != len(old) {
		return nil, errorvalues.ErrMissingOrDuplicatedSubChallenge
	}
	return staged, nil
}
