package qrgenerator

import (
	qr "github.com/skip2/go-qrcode"
)

type Generator struct {
	size  int
	level qr.RecoveryLevel
}

func NewGenerator(size int) *Generator {
	return &Generator{size: size, level: qr.Medium}
}

// Generate encodes the payload text as a PNG. The payload is embedded
// verbatim so banking apps can read it.
func (g *Generator) Generate(payload string) ([]byte, error) {
	return qr.Encode(payload, g.level, g.size)
}
