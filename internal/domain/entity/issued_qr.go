package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IssuedQR struct {
	id            uuid.UUID
	shopID        string
	shopName      string
	amount        decimal.NullDecimal
	billReference string
	payload       string
	checksum      string
	createdAt     time.Time
}

func NewIssuedQR(
	shopID, shopName string,
	amount decimal.NullDecimal,
	billReference, payload string,
) *IssuedQR {
	return &IssuedQR{
		id:            uuid.New(),
		shopID:        shopID,
		shopName:      shopName,
		amount:        amount,
		billReference: billReference,
		payload:       payload,
		checksum:      payload[len(payload)-4:],
		createdAt:     time.Now(),
	}
}

func ReconstructIssuedQR(
	id uuid.UUID,
	shopID, shopName string,
	amount decimal.NullDecimal,
	billReference, payload, checksum string,
	createdAt time.Time,
) *IssuedQR {
	return &IssuedQR{
		id:            id,
		shopID:        shopID,
		shopName:      shopName,
		amount:        amount,
		billReference: billReference,
		payload:       payload,
		checksum:      checksum,
		createdAt:     createdAt,
	}
}

func (q *IssuedQR) ID() uuid.UUID {
	return q.id
}

func (q *IssuedQR) ShopID() string {
	return q.shopID
}

func (q *IssuedQR) ShopName() string {
	return q.shopName
}

func (q *IssuedQR) Amount() decimal.NullDecimal {
	return q.amount
}

func (q *IssuedQR) BillReference() string {
	return q.billReference
}

func (q *IssuedQR) Payload() string {
	return q.payload
}

func (q *IssuedQR) Checksum() string {
	return q.checksum
}

func (q *IssuedQR) CreatedAt() time.Time {
	return q.createdAt
}
