package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/maemanee-qr/internal/domain/entity"
	"github.com/Xausdorf/maemanee-qr/internal/domain/repository"
	"github.com/Xausdorf/maemanee-qr/internal/infrastructure/postgres"
)

const payload = "00020101021130720016A000000677010112011501075360001028602150140000008209100310TESTPYTHON" +
	"5303764540514.535802TH62200716000000000008523463042EBC"

func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	return pool
}

func TestIssuedQRRepo_SaveAndFind(t *testing.T) {
	pool := newPool(t)
	repo := postgres.NewIssuedQRRepo(pool)
	ctx := context.Background()

	qr := entity.NewIssuedQR("014000000820910", "TESTPYTHON",
		decimal.NewNullDecimal(decimal.RequireFromString("14.53")), "", payload)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM issued_qr WHERE id = $1`, qr.ID())
	})

	require.NoError(t, repo.Save(ctx, qr))

	got, err := repo.FindByID(ctx, qr.ID())
	require.NoError(t, err)
	assert.Equal(t, qr.ShopID(), got.ShopID())
	assert.Equal(t, qr.Payload(), got.Payload())
	assert.Equal(t, "2EBC", got.Checksum())
	require.True(t, got.Amount().Valid)
	assert.True(t, got.Amount().Decimal.Equal(decimal.RequireFromString("14.53")))
}

func TestIssuedQRRepo_SaveWithoutAmount(t *testing.T) {
	pool := newPool(t)
	repo := postgres.NewIssuedQRRepo(pool)
	ctx := context.Background()

	qr := entity.NewIssuedQR("014000000820910", "TESTPYTHON", decimal.NullDecimal{}, "INV001", payload)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM issued_qr WHERE id = $1`, qr.ID())
	})

	require.NoError(t, repo.Save(ctx, qr))

	got, err := repo.FindByID(ctx, qr.ID())
	require.NoError(t, err)
	assert.False(t, got.Amount().Valid)
	assert.Equal(t, "INV001", got.BillReference())
}

func TestIssuedQRRepo_NotFound(t *testing.T) {
	repo := postgres.NewIssuedQRRepo(newPool(t))

	_, err := repo.FindByID(context.Background(), uuid.New())

	require.ErrorIs(t, err, repository.ErrNotFound)
}
