package chartrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/kundali/internal/domain/kundali"
)

// PostgresRepository implements kundali.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert stores the response as JSONB keyed by its id.
func (r *PostgresRepository) Insert(ctx context.Context, fingerprint string, resp kundali.Response) error {
	payload, err := json.Marshal(resp.Result)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO charts (id, fingerprint, payload, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, resp.ID, fingerprint, payload, resp.CreatedAt)
	return err
}

// FindByID fetches an archived response.
func (r *PostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (kundali.Response, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, payload, created_at
		FROM charts
		WHERE id = $1
	`, id)
	resp, err := scanResponse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kundali.Response{}, false, nil
		}
		return kundali.Response{}, false, err
	}
	return resp, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResponse(row rowScanner) (kundali.Response, error) {
	var (
		resp      kundali.Response
		payload   []byte
		createdAt time.Time
	)
	if err := row.Scan(&resp.ID, &payload, &createdAt); err != nil {
		return kundali.Response{}, err
	}
	if err := json.Unmarshal(payload, &resp.Result); err != nil {
		return kundali.Response{}, err
	}
	resp.CreatedAt = createdAt.UTC()
	return resp, nil
}

var _ kundali.Repository = (*PostgresRepository)(nil)
