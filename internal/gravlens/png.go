package gravlens

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNG16 writes the frame buffer as one lossless 16-bit-per-channel
// PNG. The only quantization is the mapping from float radiance to
// 16 bits via peak normalization and gamma.
func SavePNG16(sc *Scene, path string, gamma Real) error {
	w, h := sc.Camera.Width, sc.Camera.Height
	if len(sc.Buf) != w*h*4 {
		return fmt.Errorf("frame buffer not rendered: have %d floats, want %d", len(sc.Buf), w*h*4)
	}

	// Peak across the RGB channels; alpha is always 1.
	peak := 0.0
	for i := 0; i < len(sc.Buf); i += 4 {
		for c := ChR; c <= ChB; c++ {
			if v := sc.Buf[i+c]; v > peak {
				peak = v
			}
		}
	}
	if peak == 0 {
		peak = 1 // all-black frame
	}
	scale := 1.0 / peak

	toU16 := func(v Real) uint16 {
		if v <= 0 {
			return 0
		}
		n := v * scale
		if n > 1 {
			n = 1
		}
		if gamma != 1 {
			n = math.Pow(n, 1.0/gamma)
		}
		return uint16(math.Round(n * 65535.0))
	}

	img := image.NewNRGBA64(image.Rect(0, 0, w, h))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for y := 0; y < h; y++ {
		rowOff := y * img.Stride
		for x := 0; x < w; x++ {
			base := sc.idx(x, y)
			r := toU16(sc.Buf[base+ChR])
			g := toU16(sc.Buf[base+ChG])
			b := toU16(sc.Buf[base+ChB])
			a := uint16(0xFFFF)

			p := rowOff + x*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
