package qrcode

// Generator renders a payload string into an image.
type Generator interface {
	Generate(payload string) ([]byte, error)
}

// Cache keeps rendered images keyed by payload.
type Cache interface {
	Get(payload string) ([]byte, bool)
	Add(payload string, image []byte)
}
