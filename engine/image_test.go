package engine

import (
	"image/color"
	"testing"
)

func TestImageSetAt(t *testing.T) {
	img := NewImage(4, 3)

	img.Set(1, 2, 0xFF112233)
	if got := img.At(1, 2); got != 0xFF112233 {
		t.Errorf("At(1, 2) = %#x, want 0xff112233", got)
	}
	if got := img.Pixels()[2*4+1]; got != 0xFF112233 {
		t.Errorf("Pixels()[y*width+x] = %#x, want 0xff112233", got)
	}

	// out of bounds writes are dropped and reads return zero
	img.Set(-1, 0, 0xFFFFFFFF)
	img.Set(4, 0, 0xFFFFFFFF)
	img.Set(0, 3, 0xFFFFFFFF)
	for _, p := range img.Pixels() {
		if p == 0xFFFFFFFF {
			t.Fatal("out of bounds Set wrote into the buffer")
		}
	}
	if got := img.At(10, 10); got != 0 {
		t.Errorf("At(10, 10) = %#x, want 0", got)
	}
}

func TestImageFill(t *testing.T) {
	img := NewImage(3, 4)
	img.Fill(0xFF000001)
	img.FillColumn(1, -5, 2, 0xFF000002)
	img.FillColumn(2, 3, 99, 0xFF000003)
	img.FillColumn(7, 0, 4, 0xFF000004)

	tests := []struct {
		x, y int
		want uint32
	}{
		{0, 0, 0xFF000001},
		{1, 0, 0xFF000002},
		{1, 1, 0xFF000002},
		{1, 2, 0xFF000001},
		{2, 2, 0xFF000001},
		{2, 3, 0xFF000003},
	}
	for _, tt := range tests {
		if got := img.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %#x, want %#x", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestImageRGBA(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, 0x80102030)
	img.Set(1, 0, ARGB(color.RGBA{R: 1, G: 2, B: 3, A: 255}))

	got := img.RGBA()
	want := []byte{0x10, 0x20, 0x30, 0x80, 1, 2, 3, 255}
	if len(got) != len(want) {
		t.Fatalf("len(RGBA()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RGBA()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if c := Color(0xFF323232); c != (color.RGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xFF}) {
		t.Errorf("Color(0xff323232) = %v", c)
	}
}

func TestImageRGBAIntoReusesBuffer(t *testing.T) {
	img := NewImage(3, 2)
	img.Fill(0xFF010203)

	buf := make([]byte, 0, 64)
	out := img.RGBAInto(buf)
	if len(out) != 24 {
		t.Fatalf("len(RGBAInto()) = %d, want 24", len(out))
	}
	if &out[0] != &buf[:1][0] {
		t.Error("RGBAInto() allocated despite enough capacity")
	}
	if string(out) != string(img.RGBA()) {
		t.Errorf("RGBAInto() = %v, want %v", out, img.RGBA())
	}

	again := img.RGBAInto(out)
	if &again[0] != &out[0] {
		t.Error("second RGBAInto() did not reuse its buffer")
	}

	if grown := NewImage(4, 4).RGBAInto(out); len(grown) != 64 {
		t.Errorf("len(grown) = %d, want 64", len(grown))
	}
}
