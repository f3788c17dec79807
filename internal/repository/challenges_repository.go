package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/pkg/cleanup"
	"github.com/limbo/azkar/pkg/entity"
)

// ChallengesRepository stores one canonical row per group challenge
// and an independent per-user copy row for every participant. Personal
// challenges only have the user copy. Sub-challenge lists are kept as
// jsonb, same document shape the clients send.
type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) CreateCanonical(ctx context.Context, challenge *entity.Challenge) error {
	subs, err := sonic.Marshal(challenge.SubChallenges)
	if err != nil {
		return errors.New("marshalling sub-challenges error: " + err.Error())
	}
	_, err = cr.conn.Exec(ctx, `INSERT INTO challenges (id, group_id, creating_user_id, name, expires_at, created_at, modified_at, sub_challenges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		challenge.ID,
		challenge.GroupID,
		challenge.CreatingUserID,
		challenge.Name,
		challenge.ExpiresAt,
		challenge.CreatedAt,
		challenge.ModifiedAt,
		subs,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// FK violation
			return errorvalues.ErrGroupNotFound
		}
		return errors.New("creating challenge db error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) CreateUserCopy(ctx context.Context, userID uuid.UUID, challenge *entity.Challenge) error {
	subs, err := sonic.Marshal(challenge.SubChallenges)
	if err != nil {
		return errors.New("marshalling sub-challenges error: " + err.Error())
	}
	_, err = cr.conn.Exec(ctx, `INSERT INTO user_challenges (user_id, challenge_id, group_id, creating_user_id, name, expires_at, created_at, modified_at, sub_challenges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		userID,
		challenge.ID,
		challenge.GroupID,
		challenge.CreatingUserID,
		challenge.Name,
		challenge.ExpiresAt,
		challenge.CreatedAt,
		challenge.ModifiedAt,
		subs,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// FK violation
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating user challenge copy db error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) GetUserChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Challenge, error) {
	var challenge entity.Challenge
	var subs []byte
	challenge.ID = challengeID
	row := cr.conn.QueryRow(ctx, `SELECT group_id, creating_user_id, name, expires_at, created_at, modified_at, sub_challenges
		FROM user_challenges WHERE user_id = $1 AND challenge_id = $2;`,
		userID,
		challengeID,
	)
	err := row.Scan(&challenge.GroupID, &challenge.CreatingUserID, &challenge.Name, &challenge.ExpiresAt, &challenge.CreatedAt, &challenge.ModifiedAt, &subs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting user challenge error: " + err.Error())
	}
	if err = sonic.Unmarshal(subs, &challenge.SubChallenges); err != nil {
		return nil, errors.New("unmarshalling sub-challenges error: " + err.Error())
	}
	return &challenge, nil
}

func (cr *ChallengesRepository) ListPersonal(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error) {
	return cr.list(ctx, `SELECT challenge_id, group_id, creating_user_id, name, expires_at, created_at, modified_at, sub_challenges
		FROM user_challenges WHERE user_id = $1 AND group_id = $2 ORDER BY created_at;`,
		userID, entity.PersonalGroupID)
}

func (cr *ChallengesRepository) ListUserChallenges(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error) {
	return cr.list(ctx, `SELECT challenge_id, group_id, creating_user_id, name, expires_at, created_at, modified_at, sub_challenges
		FROM user_challenges WHERE user_id = $1 AND group_id <> $2 ORDER BY created_at;`,
		userID, entity.PersonalGroupID)
}

func (cr *ChallengesRepository) ListGroupChallenges(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Challenge, error) {
	return cr.list(ctx, `SELECT challenge_id, group_id, creating_user_id, name, expires_at, created_at, modified_at, sub_challenges
		FROM user_challenges WHERE user_id = $1 AND group_id = $2 ORDER BY created_at;`,
		userID, groupID)
}

func (cr *ChallengesRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Challenge, error) {
	rows, err := cr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing challenges error: " + err.Error())
	}
	defer rows.Close()
	challenges := make([]*entity.Challenge, 0)
	for rows.Next() {
		ch := entity.Challenge{}
		var subs []byte
		err = rows.Scan(&ch.ID, &ch.GroupID, &ch.CreatingUserID, &ch.Name, &ch.ExpiresAt, &ch.CreatedAt, &ch.ModifiedAt, &subs)
		if err != nil {
			return nil, errors.New("challenge row parsing error: " + err.Error())
		}
		if err = sonic.Unmarshal(subs, &ch.SubChallenges); err != nil {
			return nil, errors.New("unmarshalling sub-challenges error: " + err.Error())
		}
		challenges = append(challenges, &ch)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected challenge rows error: " + rows.Err().Error())
	}
	return challenges, nil
}

// SaveProgress writes the reconciled sub-challenge list of the user's
// challenge copy and, when scoreGroupID is not the personal sentinel,
// bumps the user's score in that group. Both writes share one
// transaction: progress is never persisted without its score and the
// other way around. A missing membership row on the score bump means
// corrupted data and surfaces as ErrMembershipMissing with everything
// rolled back.
func (cr *ChallengesRepository) SaveProgress(ctx context.Context, userID, challengeID uuid.UUID, subs []entity.SubChallenge, scoreGroupID uuid.UUID) error {
	encoded, err := sonic.Marshal(subs)
	if err != nil {
		return errors.New("marshalling sub-challenges error: " + err.Error())
	}
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return errors.New("opening tx for progress error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	ct, err := tx.Exec(ctx, `UPDATE user_challenges SET sub_challenges = $1, modified_at = extract(epoch FROM NOW())::bigint
		WHERE user_id = $2 AND challenge_id = $3;`,
		encoded,
		userID,
		challengeID,
	)
	if err != nil {
		return errors.New("updating challenge progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	if scoreGroupID != entity.PersonalGroupID {
		ct, err = tx.Exec(ctx, `UPDATE group_members SET total_score = total_score + 1 WHERE group_id = $1 AND user_id = $2;`,
			scoreGroupID,
			userID,
		)
		if err != nil {
			return errors.New("updating group score error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrMembershipMissing
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing progress error: " + err.Error())
	}
	return nil
}
