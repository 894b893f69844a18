package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Xausdorf/maemanee-qr/internal/domain/entity"
)

var ErrNotFound = errors.New("not found")

type IssuedQRRepository interface {
	Save(ctx context.Context, qr *entity.IssuedQR) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IssuedQR, error)
}
