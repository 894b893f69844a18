package generateqr

//go:generate mockgen -source=../../domain/repository/repository.go -destination=mocks/mock_repository.go -package=mocks
//go:generate mockgen -source=../../domain/qrcode/qrcode.go -destination=mocks/mock_qrcode.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/maemanee-qr/internal/domain/entity"
	"github.com/Xausdorf/maemanee-qr/internal/domain/maemanee"
	"github.com/Xausdorf/maemanee-qr/internal/domain/qrcode"
	"github.com/Xausdorf/maemanee-qr/internal/domain/repository"
)

type Request struct {
	ShopID        string
	ShopName      string
	Amount        decimal.NullDecimal
	BillReference string
}

type Response struct {
	ID       uuid.UUID
	Payload  string
	Checksum string
}

type ImageResponse struct {
	Response
	PNG []byte
}

type UseCase struct {
	generator qrcode.Generator
	cache     qrcode.Cache
	issued    repository.IssuedQRRepository
}

// NewUseCase wires the use case. issued may be nil, in which case payloads
// are not recorded.
func NewUseCase(generator qrcode.Generator, cache qrcode.Cache, issued repository.IssuedQRRepository) *UseCase {
	return &UseCase{
		generator: generator,
		cache:     cache,
		issued:    issued,
	}
}

func (uc *UseCase) Payload(ctx context.Context, req Request) (*Response, error) {
	p, err := build(req)
	if err != nil {
		return nil, err
	}

	payload := p.String()
	record := entity.NewIssuedQR(req.ShopID, req.ShopName, req.Amount, req.BillReference, payload)
	if uc.issued != nil {
		if err := uc.issued.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("save issued qr: %w", err)
		}
	}

	return &Response{
		ID:       record.ID(),
		Payload:  payload,
		Checksum: record.Checksum(),
	}, nil
}

func (uc *UseCase) Execute(ctx context.Context, req Request) (*ImageResponse, error) {
	resp, err := uc.Payload(ctx, req)
	if err != nil {
		return nil, err
	}

	if png, ok := uc.cache.Get(resp.Payload); ok {
		return &ImageResponse{Response: *resp, PNG: png}, nil
	}

	png, err := uc.generator.Generate(resp.Payload)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	uc.cache.Add(resp.Payload, png)

	return &ImageResponse{Response: *resp, PNG: png}, nil
}

func (uc *UseCase) Find(ctx context.Context, id uuid.UUID) (*entity.IssuedQR, error) {
	if uc.issued == nil {
		return nil, repository.ErrNotFound
	}
	return uc.issued.FindByID(ctx, id)
}

func build(req Request) (*maemanee.Payload, error) {
	p, err := maemanee.New(req.ShopID, req.ShopName)
	if err != nil {
		return nil, err
	}
	if req.Amount.Valid {
		if err := p.SetAmount(req.Amount.Decimal); err != nil {
			return nil, err
		}
	}
	if req.BillReference != "" {
		if err := p.SetBillPayment(req.BillReference); err != nil {
			return nil, err
		}
	}
	return p, nil
}
