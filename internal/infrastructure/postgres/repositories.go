package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/maemanee-qr/internal/domain/entity"
	"github.com/Xausdorf/maemanee-qr/internal/domain/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS issued_qr (
	id             UUID PRIMARY KEY,
	shop_id        TEXT NOT NULL,
	shop_name      TEXT NOT NULL,
	amount         NUMERIC,
	bill_reference TEXT NOT NULL DEFAULT '',
	payload        TEXT NOT NULL,
	checksum       CHAR(4) NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
)`

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

type IssuedQRRepo struct {
	pool *pgxpool.Pool
}

func NewIssuedQRRepo(pool *pgxpool.Pool) *IssuedQRRepo {
	return &IssuedQRRepo{pool: pool}
}

var _ repository.IssuedQRRepository = (*IssuedQRRepo)(nil)

func (r *IssuedQRRepo) Save(ctx context.Context, qr *entity.IssuedQR) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO issued_qr (id, shop_id, shop_name, amount, bill_reference, payload, checksum, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		qr.ID(), qr.ShopID(), qr.ShopName(), qr.Amount(), qr.BillReference(), qr.Payload(), qr.Checksum(), qr.CreatedAt(),
	)
	return err
}

func (r *IssuedQRRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.IssuedQR, error) {
	var (
		shopID, shopName, billReference, payload, checksum string
		amount                                             decimal.NullDecimal
		createdAt                                          time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT shop_id, shop_name, amount, bill_reference, payload, checksum, created_at
		 FROM issued_qr WHERE id = $1`,
		id,
	).Scan(&shopID, &shopName, &amount, &billReference, &payload, &checksum, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entity.ReconstructIssuedQR(id, shopID, shopName, amount, billReference, payload, checksum, createdAt), nil
}
