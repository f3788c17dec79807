package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/internal/repository"
	"github.com/limbo/azkar/pkg/entity"
)

type GroupsService struct {
	repo repository.GroupsRepositoryI
}

func NewGroupsService(groupsRepo repository.GroupsRepositoryI) *GroupsService {
	if groupsRepo == nil {
		log.Fatal("provided nil groupsRepo")
	}
	return &GroupsService{
		repo: groupsRepo,
	}
}

func (gs *GroupsService) CreateGroup(ctx context.Context, creatorID uuid.UUID, name string) (*entity.Group, error) {
	if name == "" {
		return nil, errorvalues.ErrEmptyGroupName
	}
	return gs.create(ctx, creatorID, name, []uuid.UUID{creatorID})
}

// CreatePairGroup makes the nameless group backing a direct challenge
// between two users. Repeating it for the same pair makes a new group
// every time.
func (gs *GroupsService) CreatePairGroup(ctx context.Context, creatorID, friendID uuid.UUID) (*entity.Group, error) {
	return gs.create(ctx, creatorID, "", []uuid.UUID{creatorID, friendID})
}

func (gs *GroupsService) create(ctx context.Context, creatorID uuid.UUID, name string, members []uuid.UUID) (*entity.Group, error) {
	now := time.Now().Unix()
	group := entity.Group{
		ID:            uuid.New(),
		Name:          name,
		CreatorID:     creatorID,
		UsersIDs:      members,
		ChallengesIDs: make([]uuid.UUID, 0),
		CreatedAt:     now,
		ModifiedAt:    now,
	}
	err := gs.repo.Create(ctx, &group)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	return &group, nil
}

func (gs *GroupsService) JoinGroup(ctx context.Context, groupID, userID uuid.UUID) error {
	err := gs.repo.AddMember(ctx, groupID, userID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			return err
		case errors.Is(err, errorvalues.ErrAlreadyMember):
			return err
		}
		return errors.New("groups repository error: " + err.Error())
	}
	return nil
}

func (gs *GroupsService) GetGroup(ctx context.Context, groupID, userID uuid.UUID) (*entity.Group, error) {
	group, err := gs.repo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	if !containsUser(group.UsersIDs, userID) {
		return nil, errorvalues.ErrNotGroupMember
	}
	return group, nil
}

func (gs *GroupsService) GetScores(ctx context.Context, groupID, userID uuid.UUID) ([]entity.MemberScore, error) {
	member, err := gs.repo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	if !member {
		return nil, errorvalues.ErrNotGroupMember
	}
	scores, err := gs.repo.GetScores(ctx, groupID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	return scores, nil
}

func (gs *GroupsService) GetUserGroups(ctx context.Context, userID uuid.UUID) ([]entity.UserGroup, error) {
	groups, err := gs.repo.GetUserGroups(ctx, userID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	return groups, nil
}

func containsUser(ids []uuid.UUID, userID uuid.UUID) bool {
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}
