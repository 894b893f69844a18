package qrgenerator_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/maemanee-qr/internal/infrastructure/qrgenerator"
)

func TestGenerator_Generate(t *testing.T) {
	gen := qrgenerator.NewGenerator(256)

	img, err := gen.Generate("00020101021130720016A000000677010112011501075360001028602150140000008209100310TESTPYTHON" +
		"5303764540514.535802TH62200716000000000008523463042EBC")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, []byte("\x89PNG\r\n\x1a\n")))

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 256, decoded.Bounds().Dx())
}
