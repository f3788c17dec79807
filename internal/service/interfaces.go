package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/azkar/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type AddChallengeRequest struct {
	Name          string `validate:"max=100"`
	ExpiresAt     int64  `validate:"required"`
	SubChallenges []entity.SubChallenge
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type GroupsServiceI interface {
	// Creates a named group with the creator as its first member
	CreateGroup(ctx context.Context, creatorID uuid.UUID, name string) (*entity.Group, error)
	// Creates a nameless group for two users challenging each other directly
	CreatePairGroup(ctx context.Context, creatorID, friendID uuid.UUID) (*entity.Group, error)
	// Adds the user to the group
	JoinGroup(ctx context.Context, groupID, userID uuid.UUID) error
	// Returns the group; only members can see it
	GetGroup(ctx context.Context, groupID, userID uuid.UUID) (*entity.Group, error)
	// Returns the group scoreboard; only members can see it
	GetScores(ctx context.Context, groupID, userID uuid.UUID) ([]entity.MemberScore, error)
	// Lists the user's memberships with accumulated scores
	GetUserGroups(ctx context.Context, userID uuid.UUID) ([]entity.UserGroup, error)
}

type ChallengesServiceI interface {
	// Creates a personal challenge owned exclusively by the user
	AddPersonalChallenge(ctx context.Context, userID uuid.UUID, req *AddChallengeRequest) (*entity.Challenge, error)
	// Creates a group challenge and fans a copy out to every current member
	AddGroupChallenge(ctx context.Context, userID, groupID uuid.UUID, req *AddChallengeRequest) (*entity.Challenge, error)
	// Returns the user's copy of a group challenge
	GetChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Challenge, error)
	// Lists the user's personal challenges
	GetPersonalChallenges(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error)
	// Lists the user's copies of all group challenges
	GetUserChallenges(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error)
	// Lists the user's copies of challenges of one group; only members can see them
	GetGroupChallenges(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Challenge, error)
	// Applies a progress update to a personal challenge
	UpdatePersonalChallenge(ctx context.Context, userID, challengeID uuid.UUID, newSubs []entity.SubChallenge) error
	// Applies a progress update to the user's copy of a group
	// challenge, bumping the group score on a completion transition
	UpdateChallenge(ctx context.Context, userID, challengeID uuid.UUID, newSubs []entity.SubChallenge) error
}
