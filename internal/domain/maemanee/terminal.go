package maemanee

type TerminalKind int

const (
	TerminalNone TerminalKind = iota
	TerminalBillPayment
	TerminalPaymentInnovation
)

func (k TerminalKind) String() string {
	switch k {
	case TerminalBillPayment:
		return "bill_payment"
	case TerminalPaymentInnovation:
		return "payment_innovation"
	default:
		return "none"
	}
}

// Terminal selects which merchant account field the payload carries.
// Tags 30 and 31 are mutually exclusive; the variant makes it impossible
// to hold both.
type Terminal struct {
	Kind      TerminalKind
	Reference string
}

func (t Terminal) Tag() string {
	switch t.Kind {
	case TerminalBillPayment:
		return TagBillPayment
	case TerminalPaymentInnovation:
		return TagPaymentInnovation
	default:
		return ""
	}
}
