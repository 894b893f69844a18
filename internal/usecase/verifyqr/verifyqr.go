package verifyqr

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/maemanee-qr/internal/domain/maemanee"
)

type Request struct {
	Payload string
}

type Response struct {
	ShopID    string
	Reference string
	Amount    decimal.NullDecimal
	Terminal  string
	Checksum  string
}

type UseCase struct{}

func NewUseCase() *UseCase {
	return &UseCase{}
}

func (uc *UseCase) Execute(req Request) (*Response, error) {
	d, err := maemanee.Decode(strings.TrimSpace(req.Payload))
	if err != nil {
		return nil, err
	}

	resp := &Response{
		ShopID:    d.ShopID,
		Reference: d.Reference,
		Terminal:  d.Terminal.String(),
		Checksum:  d.Checksum,
	}
	if d.HasAmount {
		resp.Amount = decimal.NewNullDecimal(d.Amount)
	}
	return resp, nil
}
