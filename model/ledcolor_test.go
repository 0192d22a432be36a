package model

import (
	"image/color"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var TestScale8IsExpected = []struct {
	Value  uint8
	Scale  uint8
	Expect uint8
}{
	{255, 255, 254},
	{255, 128, 127},
	{128, 128, 64},
	{255, 0, 0},
	{0, 255, 0},
}

func TestScale8(t *testing.T) {
	for k, v := range TestScale8IsExpected {
		t.Run("Given scale"+strconv.Itoa(k), func(t *testing.T) {
			assert.Equal(t, v.Expect, scale8(v.Value, v.Scale))
		})
	}
}

func TestGrayscale(t *testing.T) {
	rgb := NewHSV(128, 0, 200).RGB(255)
	assert.Equal(t, RGB{199, 199, 199}, rgb)
}

func TestPrimaries(t *testing.T) {
	red := NewHSV(0, 255, 255).RGB(255)
	assert.GreaterOrEqual(t, red.R, uint8(254))
	assert.Less(t, red.G, uint8(10))
	assert.Equal(t, uint8(0), red.B)

	green := NewHSV(85, 255, 255).RGB(255)
	assert.Less(t, green.R, uint8(10))
	assert.GreaterOrEqual(t, green.G, uint8(254))
	assert.Equal(t, uint8(0), green.B)

	blue := NewHSV(170, 255, 255).RGB(255)
	assert.Equal(t, uint8(0), blue.R)
	assert.Less(t, blue.G, uint8(10))
	assert.GreaterOrEqual(t, blue.B, uint8(254))
}

func TestBrightnessScales(t *testing.T) {
	rgb := NewHSV(0, 255, 255).RGB(128)
	assert.True(t, rgb.R >= 127 && rgb.R <= 128, "got %d", rgb.R)
	assert.Less(t, rgb.G, uint8(5))
	assert.Equal(t, uint8(0), rgb.B)
}

func TestBlack(t *testing.T) {
	assert.Equal(t, RGB{}, NewHSV(128, 255, 0).RGB(255))
	assert.Equal(t, RGB{}, Black.RGB(255))
}

func TestNRGBAIsOpaque(t *testing.T) {
	c := NewHSV(128, 0, 200).NRGBA(255)
	assert.Equal(t, color.NRGBA{R: 199, G: 199, B: 199, A: 255}, c)
}

func TestSerialize(t *testing.T) {
	buf := RGB{1, 2, 3}.Serialize(nil)
	buf = RGB{4, 5, 6}.Serialize(buf)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, buf)
}
