package emvtlv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/maemanee-qr/internal/domain/emvtlv"
)

func TestField_String(t *testing.T) {
	assert.Equal(t, "000201", emvtlv.Field{Tag: "00", Value: "01"}.String())
	assert.Equal(t, "5802TH", emvtlv.Field{Tag: "58", Value: "TH"}.String())
	assert.Equal(t, "6300", emvtlv.Field{Tag: "63"}.String())
}

func TestNewField_Validation(t *testing.T) {
	_, err := emvtlv.NewField("5", "x")
	require.ErrorIs(t, err, emvtlv.ErrInvalidTag)

	_, err = emvtlv.NewField("AB", "x")
	require.ErrorIs(t, err, emvtlv.ErrInvalidTag)

	_, err = emvtlv.NewField("62", strings.Repeat("x", 100))
	require.ErrorIs(t, err, emvtlv.ErrValueTooLong)

	f, err := emvtlv.NewField("62", strings.Repeat("x", 99))
	require.NoError(t, err)
	assert.Equal(t, 99, f.Len())
	assert.True(t, strings.HasPrefix(f.String(), "6299"))
}

func TestTemplate_RendersInTagOrder(t *testing.T) {
	tpl := emvtlv.NewTemplate()
	require.NoError(t, tpl.Set("58", "TH"))
	require.NoError(t, tpl.Set("00", "01"))
	require.NoError(t, tpl.Set("53", "764"))

	assert.Equal(t, "00020153037645802TH", tpl.String())
	assert.Equal(t, []string{"00", "53", "58"}, tpl.Tags())
}

func TestTemplate_SetReplaces(t *testing.T) {
	tpl := emvtlv.NewTemplate()
	require.NoError(t, tpl.Set("54", "1.00"))
	require.NoError(t, tpl.Set("54", "14.53"))

	f, ok := tpl.Get("54")
	require.True(t, ok)
	assert.Equal(t, "540514.53", f.String())
	assert.Len(t, tpl.Fields(), 1)
}

func TestTemplate_FailedSetLeavesTemplateUnchanged(t *testing.T) {
	tpl := emvtlv.NewTemplate()
	require.NoError(t, tpl.Set("62", "ok"))

	err := tpl.Set("62", strings.Repeat("x", 100))

	require.ErrorIs(t, err, emvtlv.ErrValueTooLong)
	f, _ := tpl.Get("62")
	assert.Equal(t, "ok", f.Value)
}

func TestTemplate_Nested(t *testing.T) {
	inner := emvtlv.NewTemplate()
	require.NoError(t, inner.Set("07", "0000000000085234"))

	outer := emvtlv.NewTemplate()
	require.NoError(t, outer.SetTemplate("62", inner))

	assert.Equal(t, "622007160000000000085234", outer.String())

	// the outer template owns a copy
	require.NoError(t, inner.Set("01", "changed"))
	assert.Equal(t, "622007160000000000085234", outer.String())

	sub, ok := outer.Sub("62")
	require.True(t, ok)
	assert.Equal(t, "07160000000000085234", sub.String())
}

func TestTemplate_NestedTooLong(t *testing.T) {
	inner := emvtlv.NewTemplate()
	require.NoError(t, inner.Set("02", strings.Repeat("a", 60)))
	require.NoError(t, inner.Set("03", strings.Repeat("b", 40)))

	outer := emvtlv.NewTemplate()
	err := outer.SetTemplate("30", inner)

	require.ErrorIs(t, err, emvtlv.ErrValueTooLong)
	assert.False(t, outer.Has("30"))
}

func TestTemplate_Delete(t *testing.T) {
	tpl := emvtlv.NewTemplate()
	require.NoError(t, tpl.Set("31", "x"))
	tpl.Delete("31")
	assert.False(t, tpl.Has("31"))
	assert.Empty(t, tpl.String())
}

func TestParse(t *testing.T) {
	fields, err := emvtlv.Parse("000201010211622007160000000000085234")
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, emvtlv.Field{Tag: "00", Value: "01"}, fields[0])
	assert.Equal(t, emvtlv.Field{Tag: "01", Value: "11"}, fields[1])
	assert.Equal(t, "07160000000000085234", fields[2].Value)

	inner, err := emvtlv.Parse(fields[2].Value)
	require.NoError(t, err)
	assert.Equal(t, []emvtlv.Field{{Tag: "07", Value: "0000000000085234"}}, inner)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "truncated header", data: "0002010"},
		{name: "truncated value", data: "0005ab"},
		{name: "non numeric length", data: "00x1a"},
		{name: "non numeric tag", data: "A00201"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := emvtlv.Parse(tt.data)
			require.ErrorIs(t, err, emvtlv.ErrMalformed)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	fields, err := emvtlv.Parse("")
	require.NoError(t, err)
	assert.Empty(t, fields)
}
