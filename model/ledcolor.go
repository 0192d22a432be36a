package model

import "image/color"

// HSV is the color every pattern produces: hue wraps around the wheel in
// 0..255, saturation 0 is gray, value 0 is off.
type HSV struct {
	H uint8
	S uint8
	V uint8
}

func NewHSV(h, s, v uint8) HSV {
	return HSV{H: h, S: s, V: v}
}

// Black is the zero color.
var Black = HSV{}

// RGB is an 8-bit per channel color ready for the wire.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

const (
	hueRegions   = 6
	hueRegionLen = 43 // 256 / 6
)

// RGB converts to RGB after scaling value by brightness (0..255). It uses
// the integer-only sector approximation common on 8-bit LED controllers, so
// full scale comes out as 254 rather than 255.
func (c HSV) RGB(brightness uint8) RGB {
	v := scale8(c.V, brightness)
	s := c.S
	if s == 0 {
		return RGB{R: v, G: v, B: v}
	}

	region := c.H / hueRegionLen
	rem := (c.H - region*hueRegionLen) * hueRegions

	p := scale8(v, 255-s)
	q := scale8(v, 255-scale8(s, rem))
	t := scale8(v, 255-scale8(s, 255-rem))

	switch region {
	case 0:
		return RGB{R: v, G: t, B: p}
	case 1:
		return RGB{R: q, G: v, B: p}
	case 2:
		return RGB{R: p, G: v, B: t}
	case 3:
		return RGB{R: p, G: q, B: v}
	case 4:
		return RGB{R: t, G: p, B: v}
	default:
		return RGB{R: v, G: p, B: q}
	}
}

// NRGBA is the opaque image color of c at the given brightness.
func (c HSV) NRGBA(brightness uint8) color.NRGBA {
	rgb := c.RGB(brightness)
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Serialize appends the three channel bytes in R, G, B order.
func (c RGB) Serialize(buf []byte) []byte {
	return append(buf, c.R, c.G, c.B)
}

// scale8 returns (value*scale + 1) >> 8.
func scale8(value, scale uint8) uint8 {
	return uint8((uint16(value)*uint16(scale) + 1) >> 8)
}
