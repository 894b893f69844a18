package maemanee

// Top-level tags.
const (
	TagPayloadFormat     = "00"
	TagInitiationMethod  = "01"
	TagBillPayment       = "30"
	TagPaymentInnovation = "31"
	TagCurrency          = "53"
	TagAmount            = "54"
	TagCountry           = "58"
	TagAdditionalData    = "62"
	TagCRC               = "63"
)

// Sub-tags of the bill payment merchant account (tag 30).
const (
	accountTagAID        = "00"
	accountTagBillerID   = "01"
	accountTagReference1 = "02"
	accountTagReference2 = "03"
)

// Sub-tags of the additional data template (tag 62).
const (
	additionalTagTerminalLabel = "07"
)

const (
	PayloadFormatVersion = "01"
	StaticInitiation     = "11"
	AID                  = "A000000677010112"
	BillerID             = "010753600010286"
	CurrencyTHB          = "764"
	CountryTH            = "TH"
	TerminalLabel        = "0000000000085234"

	crcLength = "04"

	// Amount value is integer digits, a point and two fraction digits.
	maxAmountIntegerDigits = 99 - 3
	// Below 0.001 an amount rounds to 0.00.
	minAmountMagnitude = -2
)
