package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/internal/reconcile"
	"github.com/limbo/azkar/internal/repository"
	"github.com/limbo/azkar/pkg/entity"
)

type ChallengesService struct {
	challengesRepo repository.ChallengesRepositoryI
	groupsRepo     repository.GroupsRepositoryI
	reconciler     *reconcile.Reconciler
	logger         *slog.Logger
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI, groupsRepo repository.GroupsRepositoryI) *ChallengesService {
	if challengesRepo == nil || groupsRepo == nil {
		log.Fatal("on challenges service provided nil repos")
	}
	logger := slog.Default()
	return &ChallengesService{
		challengesRepo: challengesRepo,
		groupsRepo:     groupsRepo,
		reconciler:     reconcile.New(logger),
		logger:         logger,
	}
}

func (cs *ChallengesService) AddPersonalChallenge(ctx context.Context, userID uuid.UUID, req *AddChallengeRequest) (*entity.Challenge, error) {
	if err := validateNewChallenge(req, time.Now()); err != nil {
		return nil, err
	}
	challenge := cs.newChallenge(userID, entity.PersonalGroupID, req)
	err := cs.challengesRepo.CreateUserCopy(ctx, userID, challenge)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenge, nil
}

// AddGroupChallenge persists the canonical challenge once and then
// copies it to every current member. The fan-out is a batch of
// independent per-user inserts: a failed copy is logged and skipped,
// the rest of the members still get theirs.
func (cs *ChallengesService) AddGroupChallenge(ctx context.Context, userID, groupID uuid.UUID, req *AddChallengeRequest) (*entity.Challenge, error) {
	if err := validateNewChallenge(req, time.Now()); err != nil {
		return nil, err
	}
	group, err := cs.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	if !containsUser(group.UsersIDs, userID) {
		return nil, errorvalues.ErrNotGroupMember
	}
	challenge := cs.newChallenge(userID, groupID, req)
	if err = cs.challengesRepo.CreateCanonical(ctx, challenge); err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	for _, memberID := range group.UsersIDs {
		if err = cs.challengesRepo.CreateUserCopy(ctx, memberID, challenge); err != nil {
			cs.logger.Warn("fanning out group challenge to member failed",
				slog.String("challenge_id", challenge.ID.String()),
				slog.String("user_id", memberID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return challenge, nil
}

func (cs *ChallengesService) newChallenge(userID, groupID uuid.UUID, req *AddChallengeRequest) *entity.Challenge {
	now := time.Now().Unix()
	subs := make([]entity.SubChallenge, len(req.SubChallenges))
	copy(subs, req.SubChallenges)
	return &entity.Challenge{
		ID:             uuid.New(),
		GroupID:        groupID,
		CreatingUserID: userID,
		Name:           req.Name,
		ExpiresAt:      req.ExpiresAt,
		CreatedAt:      now,
		ModifiedAt:     now,
		SubChallenges:  subs,
	}
}

func (cs *ChallengesService) GetChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Challenge, error) {
	challenge, err := cs.getOwnCopy(ctx, userID, challengeID, false)
	if err != nil {
		return nil, err
	}
	return challenge, nil
}

func (cs *ChallengesService) GetPersonalChallenges(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error) {
	challenges, err := cs.challengesRepo.ListPersonal(ctx, userID)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}

func (cs *ChallengesService) GetUserChallenges(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error) {
	challenges, err := cs.challengesRepo.ListUserChallenges(ctx, userID)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}

func (cs *ChallengesService) GetGroupChallenges(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Challenge, error) {
	member, err := cs.groupsRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	if !member {
		return nil, errorvalues.ErrNotGroupMember
	}
	challenges, err := cs.challengesRepo.ListGroupChallenges(ctx, userID, groupID)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}

func (cs *ChallengesService) UpdatePersonalChallenge(ctx context.Context, userID, challengeID uuid.UUID, newSubs []entity.SubChallenge) error {
	challenge, err := cs.getOwnCopy(ctx, userID, challengeID, true)
	if err != nil {
		return err
	}
	// Expired challenges reject updates before any reconciliation runs.
	if challenge.ExpiresAt < time.Now().Unix() {
		return errorvalues.ErrChallengeExpired
	}
	updated, err := cs.reconciler.Reconcile(challenge.SubChallenges, newSubs)
	if err != nil {
		return err
	}
	// Personal challenges never score, the sentinel skips the bump.
	return cs.saveProgress(ctx, userID, challengeID, updated, entity.PersonalGroupID)
}

// UpdateChallenge reconciles a progress update against the user's copy
// of a group challenge. When the update moves the challenge from "work
// left" to "everything done", the user's score in the owning group
// goes up by one, in the same transaction as the progress itself. A
// challenge that is already fully done never scores again.
func (cs *ChallengesService) UpdateChallenge(ctx context.Context, userID, challengeID uuid.UUID, newSubs []entity.SubChallenge) error {
	challenge, err := cs.getOwnCopy(ctx, userID, challengeID, false)
	if err != nil {
		return err
	}
	if challenge.ExpiresAt < time.Now().Unix() {
		return errorvalues.ErrChallengeExpired
	}
	wasCompleted := reconcile.Completed(challenge.SubChallenges)
	updated, err := cs.reconciler.Reconcile(challenge.SubChallenges, newSubs)
	if err != nil {
		return err
	}
	scoreGroupID := entity.PersonalGroupID
	if !wasCompleted && reconcile.Completed(updated) {
		scoreGroupID = challenge.GroupID
	}
	return cs.saveProgress(ctx, userID, challengeID, updated, scoreGroupID)
}

// getOwnCopy loads the user's copy and checks it is of the requested
// kind. A copy of the wrong kind is reported as not found so group
// endpoints never leak personal challenges and the other way around.
func (cs *ChallengesService) getOwnCopy(ctx context.Context, userID, challengeID uuid.UUID, personal bool) (*entity.Challenge, error) {
	challenge, err := cs.challengesRepo.GetUserChallenge(ctx, userID, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if challenge.Personal() != personal {
		return nil, errorvalues.ErrChallengeNotFound
	}
	return challenge, nil
}

func (cs *ChallengesService) saveProgress(ctx context.Context, userID, challengeID uuid.UUID, subs []entity.SubChallenge, scoreGroupID uuid.UUID) error {
	err := cs.challengesRepo.SaveProgress(ctx, userID, challengeID, subs, scoreGroupID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			return err
		case errors.Is(err, errorvalues.ErrMembershipMissing):
			// Invariant violation, let it surface loudly.
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	return nil
}
