// Package maemanee builds MaeManee (PromptPay bill payment) QR payloads.
//
// A Payload is created from a shop id and shop name, optionally given an
// amount and a bill reference, and rendered with String. Every render
// rebuilds the text and its CRC from the current fields.
package maemanee

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/maemanee-qr/internal/domain/crc16"
	"github.com/Xausdorf/maemanee-qr/internal/domain/emvtlv"
)

// Payload is not safe for concurrent use.
type Payload struct {
	shopID   string
	shopName string
	amount   decimal.Decimal
	terminal Terminal
	fields   *emvtlv.Template
}

func New(shopID, shopName string) (*Payload, error) {
	if err := validateIdentifier("shop id", shopID); err != nil {
		return nil, err
	}
	if err := validateIdentifier("shop name", shopName); err != nil {
		return nil, err
	}

	p := &Payload{
		shopID:   shopID,
		shopName: shopName,
		fields:   emvtlv.NewTemplate(),
	}

	for _, f := range []emvtlv.Field{
		{Tag: TagPayloadFormat, Value: PayloadFormatVersion},
		{Tag: TagInitiationMethod, Value: StaticInitiation},
		{Tag: TagCurrency, Value: CurrencyTHB},
		{Tag: TagCountry, Value: CountryTH},
	} {
		if err := p.fields.Set(f.Tag, f.Value); err != nil {
			return nil, err
		}
	}

	additional := emvtlv.NewTemplate()
	if err := additional.Set(additionalTagTerminalLabel, TerminalLabel); err != nil {
		return nil, err
	}
	if err := p.fields.SetTemplate(TagAdditionalData, additional); err != nil {
		return nil, err
	}

	if err := p.installBillPayment(shopName); err != nil {
		return nil, fmt.Errorf("%w: shop id and name do not fit the merchant account: %w", ErrInvalidArgument, err)
	}
	return p, nil
}

func (p *Payload) ShopID() string {
	return p.shopID
}

func (p *Payload) ShopName() string {
	return p.shopName
}

// Amount returns the transaction amount and whether one is set.
func (p *Payload) Amount() (decimal.Decimal, bool) {
	return p.amount, p.fields.Has(TagAmount)
}

func (p *Payload) Terminal() Terminal {
	return p.terminal
}

// SetAmount sets the transaction amount in baht, replacing any previous
// amount. The value is rounded to satang and rendered with two fractional
// digits.
func (p *Payload) SetAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidArgument, amount)
	}
	// Checked on mantissa and exponent so rounding never expands a huge
	// exponent into digits.
	magnitude := amount.NumDigits() + int(amount.Exponent())
	if magnitude > maxAmountIntegerDigits {
		return fmt.Errorf("tag %s: %w (amount has %d integer digits)", TagAmount, ErrValueTooLong, magnitude)
	}
	if magnitude < minAmountMagnitude {
		return fmt.Errorf("%w: amount rounds to zero", ErrInvalidArgument)
	}
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return fmt.Errorf("%w: amount %s rounds to zero", ErrInvalidArgument, amount)
	}
	if err := p.fields.Set(TagAmount, rounded.StringFixed(2)); err != nil {
		return err
	}
	p.amount = rounded
	return nil
}

// SetBillPayment installs the bill payment merchant account carrying
// reference in place of the shop name. Any payment innovation field is
// removed.
func (p *Payload) SetBillPayment(reference string) error {
	if err := validateIdentifier("bill reference", reference); err != nil {
		return err
	}
	return p.installBillPayment(reference)
}

// SetPaymentInnovation is reserved for tag 31. Its layout is not defined for
// MaeManee so the call always fails and the payload is left unchanged.
func (p *Payload) SetPaymentInnovation(string) error {
	return ErrUnsupported
}

func (p *Payload) installBillPayment(reference string) error {
	account := emvtlv.NewTemplate()
	for _, f := range []emvtlv.Field{
		{Tag: accountTagAID, Value: AID},
		{Tag: accountTagBillerID, Value: BillerID},
		{Tag: accountTagReference1, Value: p.shopID},
		{Tag: accountTagReference2, Value: reference},
	} {
		if err := account.Set(f.Tag, f.Value); err != nil {
			return err
		}
	}
	if err := p.fields.SetTemplate(TagBillPayment, account); err != nil {
		return err
	}
	p.fields.Delete(Terminal{Kind: TerminalPaymentInnovation}.Tag())
	p.terminal = Terminal{Kind: TerminalBillPayment, Reference: reference}
	return nil
}

// Field returns the rendered top-level field stored under tag.
func (p *Payload) Field(tag string) (emvtlv.Field, bool) {
	return p.fields.Get(tag)
}

// Fields returns the top-level fields in the order they are rendered. The
// checksum field is not included.
func (p *Payload) Fields() []emvtlv.Field {
	return p.fields.Fields()
}

// String renders the payload including its trailing CRC field.
func (p *Payload) String() string {
	return crc16.Append(p.fields.String() + TagCRC + crcLength)
}

func validateIdentifier(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
	}
	if len(value) > emvtlv.MaxValue {
		return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, name, ErrValueTooLong)
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return fmt.Errorf("%w: %s contains a non printable character at %d", ErrInvalidArgument, name, i)
		}
	}
	return nil
}
