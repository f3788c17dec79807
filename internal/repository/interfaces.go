package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/azkar/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type GroupsRepositoryI interface {
	// Creates new group with its initial member rows
	Create(ctx context.Context, group *entity.Group) error
	// Returns group with member ids and challenge ids filled in
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	// Adds user to the group with a zero score
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	// Reports whether user belongs to the group
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	// Lists scores of all group members
	GetScores(ctx context.Context, groupID uuid.UUID) ([]entity.MemberScore, error)
	// Lists memberships of one user with accumulated scores
	GetUserGroups(ctx context.Context, userID uuid.UUID) ([]entity.UserGroup, error)
}

type ChallengesRepositoryI interface {
	// Stores the canonical copy of a group challenge
	CreateCanonical(ctx context.Context, challenge *entity.Challenge) error
	// Stores one user's copy of a challenge (personal or fanned-out group one)
	CreateUserCopy(ctx context.Context, userID uuid.UUID, challenge *entity.Challenge) error
	// Returns the user's copy of the challenge
	GetUserChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Challenge, error)
	// Lists the user's personal challenges
	ListPersonal(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error)
	// Lists the user's copies of group challenges
	ListUserChallenges(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error)
	// Lists the user's copies of challenges of one group
	ListGroupChallenges(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Challenge, error)
	// Persists reconciled sub-challenges and, when scoreGroupID is not
	// the personal sentinel, the score increment in the same transaction
	SaveProgress(ctx context.Context, userID, challengeID uuid.UUID, subs []entity.SubChallenge, scoreGroupID uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
