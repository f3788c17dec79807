package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/pkg/cleanup"
	"github.com/limbo/azkar/pkg/entity"
)

type GroupsRepository struct {
	conn PgConnection
}

func NewGroupsRepo(cfg DBConfig) *GroupsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for groupsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GroupsRepository{
		conn: pool,
	}
}

func NewGroupsRepoWithConn(conn PgConnection) *GroupsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	return &GroupsRepository{
		conn: conn,
	}
}

// Create inserts the group row and a membership row per initial member
// in one transaction. The creator is expected to be in UsersIDs.
func (gr *GroupsRepository) Create(ctx context.Context, group *entity.Group) error {
	if group == nil {
		return errors.New("group is nil")
	}
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return errors.New("opening tx for group creation error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `INSERT INTO groups (id, name, creator_id, created_at, modified_at) VALUES ($1, $2, $3, $4, $5);`,
		group.ID,
		group.Name,
		group.CreatorID,
		group.CreatedAt,
		group.ModifiedAt,
	)
	if err != nil {
		return errors.New("creating group db error: " + err.Error())
	}
	for _, uid := range group.UsersIDs {
		_, err = tx.Exec(ctx, `INSERT INTO group_members (group_id, user_id, total_score) VALUES ($1, $2, 0);`,
			group.ID,
			uid,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				// FK violation
				return errorvalues.ErrUserNotFound
			}
			return errors.New("creating group member db error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing group creation error: " + err.Error())
	}
	return nil
}

func (gr *GroupsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	group.ID = id
	row := gr.conn.QueryRow(ctx, `SELECT name, creator_id, created_at, modified_at FROM groups WHERE id = $1;`, id)
	if err := row.Scan(&group.Name, &group.CreatorID, &group.CreatedAt, &group.ModifiedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGroupNotFound
		}
		return nil, errors.New("getting group by id error: " + err.Error())
	}
	rows, err := gr.conn.Query(ctx, `SELECT user_id FROM group_members WHERE group_id = $1;`, id)
	if err != nil {
		return nil, errors.New("getting group members error: " + err.Error())
	}
	defer rows.Close()
	group.UsersIDs = make([]uuid.UUID, 0)
	for rows.Next() {
		var uid uuid.UUID
		if err = rows.Scan(&uid); err != nil {
			return nil, errors.New("group member row parsing error: " + err.Error())
		}
		group.UsersIDs = append(group.UsersIDs, uid)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected group member rows error: " + rows.Err().Error())
	}
	chRows, err := gr.conn.Query(ctx, `SELECT id FROM challenges WHERE group_id = $1;`, id)
	if err != nil {
		return nil, errors.New("getting group challenge ids error: " + err.Error())
	}
	defer chRows.Close()
	group.ChallengesIDs = make([]uuid.UUID, 0)
	for chRows.Next() {
		var cid uuid.UUID
		if err = chRows.Scan(&cid); err != nil {
			return nil, errors.New("group challenge row parsing error: " + err.Error())
		}
		group.ChallengesIDs = append(group.ChallengesIDs, cid)
	}
	if chRows.Err() != nil {
		return nil, errors.New("unexpected group challenge rows error: " + chRows.Err().Error())
	}
	return &group, nil
}

func (gr *GroupsRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	_, err := gr.conn.Exec(ctx, `INSERT INTO group_members (group_id, user_id, total_score) VALUES ($1, $2, 0);`,
		groupID,
		userID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAlreadyMember
			// FK violation
			case "23503":
				return errorvalues.ErrGroupNotFound
			}
		}
		return errors.New("adding group member error: " + err.Error())
	}
	return nil
}

func (gr *GroupsRepository) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var exists bool
	row := gr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2);`,
		groupID,
		userID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting membership error: " + err.Error())
	}
	return exists, nil
}

func (gr *GroupsRepository) GetScores(ctx context.Context, groupID uuid.UUID) ([]entity.MemberScore, error) {
	rows, err := gr.conn.Query(ctx, `SELECT user_id, total_score FROM group_members WHERE group_id = $1 ORDER BY total_score DESC;`, groupID)
	if err != nil {
		return nil, errors.New("getting group scores error: " + err.Error())
	}
	defer rows.Close()
	scores := make([]entity.MemberScore, 0)
	for rows.Next() {
		var score entity.MemberScore
		if err = rows.Scan(&score.UserID, &score.TotalScore); err != nil {
			return nil, errors.New("score row parsing error: " + err.Error())
		}
		scores = append(scores, score)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected score rows error: " + rows.Err().Error())
	}
	return scores, nil
}

func (gr *GroupsRepository) GetUserGroups(ctx context.Context, userID uuid.UUID) ([]entity.UserGroup, error) {
	rows, err := gr.conn.Query(ctx, `SELECT group_id, total_score FROM group_members WHERE user_id = $1;`, userID)
	if err != nil {
		return nil, errors.New("getting user groups error: " + err.Error())
	}
	defer rows.Close()
	groups := make([]entity.UserGroup, 0)
	for rows.Next() {
		var ug entity.UserGroup
		if err = rows.Scan(&ug.GroupID, &ug.TotalScore); err != nil {
			return nil, errors.New("user group row parsing error: " + err.Error())
		}
		groups = append(groups, ug)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected user group rows error: " + rows.Err().Error())
	}
	return groups, nil
}
