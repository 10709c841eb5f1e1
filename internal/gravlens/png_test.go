package gravlens

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSavePNG16(t *testing.T) {
	sc := movingScene(16, 12)
	RenderFrame(sc, SerialDispatcher{})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG16(sc, path, 2.2); err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 16 || b.Dy() != 12 {
		t.Fatalf("decoded size %dx%d, want 16x12", b.Dx(), b.Dy())
	}

	// Peak normalization maps the brightest channel to full scale.
	sawFull := false
	for y := 0; y < 12 && !sawFull; y++ {
		for x := 0; x < 16; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			if a != 0xFFFF {
				t.Fatalf("pixel (%d,%d) alpha %d, want opaque", x, y, a)
			}
			if r == 0xFFFF || g == 0xFFFF || bb == 0xFFFF {
				sawFull = true
				break
			}
		}
	}
	if !sawFull {
		t.Fatal("no channel reached full scale after peak normalization")
	}
}

func TestSavePNG16AllBlack(t *testing.T) {
	sc := movingScene(4, 4)
	// Unrendered buffer: all zero. The writer must not divide by zero.
	path := filepath.Join(t.TempDir(), "black.png")
	if err := SavePNG16(sc, path, 1); err != nil {
		t.Fatalf("save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(2, 2).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("black frame decoded as (%d,%d,%d)", r, g, b)
	}
}

func TestSavePNG16RejectsUnallocatedBuffer(t *testing.T) {
	sc := movingScene(4, 4)
	sc.Buf = sc.Buf[:8]
	if err := SavePNG16(sc, filepath.Join(t.TempDir(), "x.png"), 1); err == nil {
		t.Fatal("truncated buffer accepted")
	}
}
