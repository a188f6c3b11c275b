package style

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
)

const maxTextureSide = 100

// NoiseTexture rasterizes side x side random gray pixels with an alpha of
// opacity percent and returns them as a PNG data URI. A nil rng uses the
// process-wide source.
func NoiseTexture(side int, opacity float64, rng *rand.Rand) string {
	side = min(max(side, 1), maxTextureSide)
	alpha := uint8(clamp(opacity, 0, 100) * 2.55)

	gray := func() uint8 { return uint8(rand.IntN(256)) }
	if rng != nil {
		gray = func() uint8 { return uint8(rng.IntN(256)) }
	}

	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			v := gray()
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: alpha})
		}
	}

	var buf bytes.Buffer
	// Encoding into memory cannot fail for an NRGBA image.
	_ = png.Encode(&buf, img)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
