package maemanee

import (
	"errors"

	"github.com/Xausdorf/maemanee-qr/internal/domain/emvtlv"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnsupported      = errors.New("payment innovation field is not supported")
	ErrChecksumMismatch = errors.New("checksum mismatch")

	ErrValueTooLong = emvtlv.ErrValueTooLong
	ErrMalformed    = emvtlv.ErrMalformed
)
