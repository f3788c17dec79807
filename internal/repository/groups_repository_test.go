package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/internal/repository"
	"github.com/limbo/azkar/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateGroupRow(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGroupsRepoWithConn(conn)
	creatorID := uuid.New()
	memberID := uuid.New()
	now := time.Now().Unix()
	group := entity.Group{
		ID:         uuid.New(),
		Name:       "test_group",
		CreatorID:  creatorID,
		UsersIDs:   []uuid.UUID{creatorID, memberID},
		CreatedAt:  now,
		ModifiedAt: now,
	}
	groupQuery := regexp.QuoteMeta(`INSERT INTO groups (id, name, creator_id, created_at, modified_at) VALUES ($1, $2, $3, $4, $5);`)
	memberQuery := regexp.QuoteMeta(`INSERT INTO group_members (group_id, user_id, total_score) VALUES ($1, $2, 0);`)
	ctx := context.Background()
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(groupQuery).
			WithArgs(group.ID, group.Name, group.CreatorID, group.CreatedAt, group.ModifiedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectExec(memberQuery).
			WithArgs(group.ID, creatorID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectExec(memberQuery).
			WithArgs(group.ID, memberID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		err := repo.Create(ctx, &group)
		assert.NoError(t, err)
	})
	t.Run("FK violation on a member", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(groupQuery).
			WithArgs(group.ID, group.Name, group.CreatorID, group.CreatedAt, group.ModifiedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectExec(memberQuery).
			WithArgs(group.ID, creatorID).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		conn.ExpectRollback()
		err := repo.Create(ctx, &group)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(groupQuery).
			WithArgs(group.ID, group.Name, group.CreatorID, group.CreatedAt, group.ModifiedAt).
			WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		err := repo.Create(ctx, &group)
		assert.Error(t, err)
	})
}

func TestGetGroupByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGroupsRepoWithConn(conn)
	now := time.Now().Unix()
	group := entity.Group{
		ID:            uuid.New(),
		Name:          "test_group",
		CreatorID:     uuid.New(),
		UsersIDs:      []uuid.UUID{uuid.New()},
		ChallengesIDs: []uuid.UUID{uuid.New()},
		CreatedAt:     now,
		ModifiedAt:    now,
	}
	groupQuery := regexp.QuoteMeta(`SELECT name, creator_id, created_at, modified_at FROM groups WHERE id = $1;`)
	membersQuery := regexp.QuoteMeta(`SELECT user_id FROM group_members WHERE group_id = $1;`)
	challengesQuery := regexp.QuoteMeta(`SELECT id FROM challenges WHERE group_id = $1;`)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(groupQuery).
			WithArgs(group.ID).
			WillReturnRows(pgxmock.NewRows([]string{"name", "creator_id", "created_at", "modified_at"}).
				AddRow(group.Name, group.CreatorID, group.CreatedAt, group.ModifiedAt))
		conn.ExpectQuery(membersQuery).
			WithArgs(group.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(group.UsersIDs[0]))
		conn.ExpectQuery(challengesQuery).
			WithArgs(group.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(group.ChallengesIDs[0]))
		result, err := repo.GetByID(ctx, group.ID)
		assert.NoError(t, err)
		assert.Equal(t, group, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(groupQuery).
			WithArgs(group.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, group.ID)
		assert.ErrorIs(t, err, errorvalues.ErrGroupNotFound)
	})
}

func TestAddMember(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGroupsRepoWithConn(conn)
	groupID := uuid.New()
	userID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO group_members (group_id, user_id, total_score) VALUES ($1, $2, 0);`)
	ctx := context.Background()
	t.Run("added", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(groupID, userID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.AddMember(ctx, groupID, userID)
		assert.NoError(t, err)
	})
	t.Run("unique violation", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(groupID, userID).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.AddMember(ctx, groupID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyMember)
	})
	t.Run("FK violation", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(groupID, userID).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.AddMember(ctx, groupID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrGroupNotFound)
	})
}

func TestIsMember(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGroupsRepoWithConn(conn)
	groupID := uuid.New()
	userID := uuid.New()
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2);`)
	ctx := context.Background()
	t.Run("member", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(groupID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		member, err := repo.IsMember(ctx, groupID, userID)
		assert.NoError(t, err)
		assert.True(t, member)
	})
	t.Run("stranger", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(groupID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		member, err := repo.IsMember(ctx, groupID, userID)
		assert.NoError(t, err)
		assert.False(t, member)
	})
}

func TestGetScores(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGroupsRepoWithConn(conn)
	groupID := uuid.New()
	scores := []entity.MemberScore{
		{UserID: uuid.New(), TotalScore: 5},
		{UserID: uuid.New(), TotalScore: 2},
	}
	query := regexp.QuoteMeta(`SELECT user_id, total_score FROM group_members WHERE group_id = $1 ORDER BY total_score DESC;`)
	ctx := context.Background()
	t.Run("scoreboard", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(groupID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "total_score"}).
				AddRow(scores[0].UserID, scores[0].TotalScore).
				AddRow(scores[1].UserID, scores[1].TotalScore))
		result, err := repo.GetScores(ctx, groupID)
		assert.NoError(t, err)
		assert.Equal(t, scores, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(groupID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetScores(ctx, groupID)
		assert.Error(t, err)
	})
}

func TestGetUserGroups(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGroupsRepoWithConn(conn)
	userID := uuid.New()
	memberships := []entity.UserGroup{
		{GroupID: uuid.New(), TotalScore: 3},
	}
	query := regexp.QuoteMeta(`SELECT group_id, total_score FROM group_members WHERE user_id = $1;`)
	ctx := context.Background()
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"group_id", "total_score"}).
				AddRow(memberships[0].GroupID, memberships[0].TotalScore))
		result, err := repo.GetUserGroups(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, memberships, result)
	})
	t.Run("empty", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"group_id", "total_score"}))
		result, err := repo.GetUserGroups(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}
