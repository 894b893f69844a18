package maemanee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/maemanee-qr/internal/domain/crc16"
	"github.com/Xausdorf/maemanee-qr/internal/domain/emvtlv"
)

const trailerLen = len(TagCRC) + len(crcLength) + 4

// Decoded is the content recovered from a rendered payload.
type Decoded struct {
	ShopID    string
	Reference string
	Amount    decimal.Decimal
	HasAmount bool
	Terminal  TerminalKind
	Checksum  string
	Fields    []emvtlv.Field
}

// Verify checks the trailing CRC field of payload against its content.
func Verify(payload string) error {
	if len(payload) < trailerLen {
		return fmt.Errorf("%w: payload shorter than the checksum field", ErrMalformed)
	}
	body := payload[:len(payload)-4]
	if !strings.HasSuffix(body, TagCRC+crcLength) {
		return fmt.Errorf("%w: payload does not end with a checksum field", ErrMalformed)
	}
	got := strings.ToUpper(payload[len(payload)-4:])
	if _, err := strconv.ParseUint(got, 16, 16); err != nil {
		return fmt.Errorf("%w: checksum %q is not hexadecimal", ErrMalformed, got)
	}
	if want := crc16.Format(crc16.Checksum([]byte(body))); got != want {
		return fmt.Errorf("%w: payload carries %s, computed %s", ErrChecksumMismatch, got, want)
	}
	return nil
}

// Decode verifies payload and extracts the merchant account and amount.
func Decode(payload string) (*Decoded, error) {
	if err := Verify(payload); err != nil {
		return nil, err
	}

	fields, err := emvtlv.Parse(payload[:len(payload)-trailerLen])
	if err != nil {
		return nil, err
	}

	d := &Decoded{
		Checksum: strings.ToUpper(payload[len(payload)-4:]),
		Fields:   fields,
	}
	for _, f := range fields {
		switch f.Tag {
		case TagBillPayment:
			if d.Terminal != TerminalNone {
				return nil, fmt.Errorf("%w: both tag 30 and 31 present", ErrMalformed)
			}
			if err := d.decodeAccount(f.Value); err != nil {
				return nil, err
			}
			d.Terminal = TerminalBillPayment
		case TagPaymentInnovation:
			if d.Terminal != TerminalNone {
				return nil, fmt.Errorf("%w: both tag 30 and 31 present", ErrMalformed)
			}
			d.Terminal = TerminalPaymentInnovation
		case TagAmount:
			amount, err := decimal.NewFromString(f.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: amount %q: %w", ErrMalformed, f.Value, err)
			}
			d.Amount = amount
			d.HasAmount = true
		}
	}
	return d, nil
}

func (d *Decoded) decodeAccount(value string) error {
	sub, err := emvtlv.Parse(value)
	if err != nil {
		return fmt.Errorf("merchant account: %w", err)
	}
	for _, f := range sub {
		switch f.Tag {
		case accountTagReference1:
			d.ShopID = f.Value
		case accountTagReference2:
			d.Reference = f.Value
		}
	}
	return nil
}
