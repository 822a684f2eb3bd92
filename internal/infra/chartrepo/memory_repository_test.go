package chartrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/kundali/internal/domain/kundali"
)

func TestMemoryRepositoryInsertAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	resp := kundali.Response{ID: uuid.New(), CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, repo.Insert(ctx, "fp", resp))

	got, ok, err := repo.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, resp, got)

	_, ok, err = repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	require.False(t, ok)
}

type fakeRow struct {
	id        uuid.UUID
	payload   []byte
	createdAt time.Time
	err       error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*[]byte) = r.payload
	*dest[2].(*time.Time) = r.createdAt
	return nil
}

func TestScanResponse(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.FixedZone("SGT", 8*3600))
	row := fakeRow{id: id, payload: []byte(`{"julianDay":2451545,"ayanamsa":23.85}`), createdAt: created}

	resp, err := scanResponse(row)
	require.NoError(t, err)
	require.Equal(t, id, resp.ID)
	require.Equal(t, 2451545.0, resp.Result.JulianDay)
	require.Equal(t, time.UTC, resp.CreatedAt.Location())
	require.True(t, created.Equal(resp.CreatedAt))
}

func TestScanResponseErrors(t *testing.T) {
	_, err := scanResponse(fakeRow{err: errors.New("scan failed")})
	require.Error(t, err)

	_, err = scanResponse(fakeRow{id: uuid.New(), payload: []byte(`not json`)})
	require.Error(t, err)
}
