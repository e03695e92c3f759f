package raster

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/anchormark"
	"github.com/gogpu/anchormark/recording"
)

func testViewport() recording.Viewport {
	return recording.NewViewport(anchormark.Box{Left: 0, Top: 20, Width: 20, Height: 20}, 0, 1)
}

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("png") {
		t.Fatal("png backend not registered")
	}

	backend, err := recording.NewBackend("png")
	if err != nil {
		t.Fatalf("failed to create png backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}

	f, _ := recording.Lookup("png")
	if f.Extension != ".png" || f.MediaType != "image/png" {
		t.Errorf("format = %+v", f)
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()

	vp := recording.NewViewport(anchormark.Box{Width: 90.5, Height: 40}, 5, 1)
	if err := backend.Begin(vp); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 101 || backend.Height() != 50 {
		t.Errorf("size = %dx%d, want 101x50", backend.Width(), backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if b := img.Bounds(); b.Dx() != 101 || b.Dy() != 50 {
		t.Errorf("image bounds = %v", b)
	}
}

func TestBackendDrawBeforeBegin(t *testing.T) {
	backend := NewBackend()
	box := anchormark.CenteredBox(anchormark.Pt(0, 0), 2)

	if err := backend.DrawHollowRect(box, 1, anchormark.Blue); !errors.Is(err, recording.ErrNotStarted) {
		t.Errorf("DrawHollowRect = %v, want ErrNotStarted", err)
	}
	if err := backend.DrawLine(anchormark.Pt(0, 0), anchormark.Pt(1, 1), 1, anchormark.Blue); !errors.Is(err, recording.ErrNotStarted) {
		t.Errorf("DrawLine = %v, want ErrNotStarted", err)
	}
	if _, err := backend.WriteTo(&bytes.Buffer{}); !errors.Is(err, recording.ErrNotFinished) {
		t.Errorf("WriteTo = %v, want ErrNotFinished", err)
	}
}

func TestBackendFilledEllipse(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(testViewport()); err != nil {
		t.Fatal(err)
	}
	if err := backend.DrawFilledEllipse(anchormark.CenteredBox(anchormark.Pt(10, 10), 8), anchormark.Blue); err != nil {
		t.Fatalf("DrawFilledEllipse failed: %v", err)
	}
	if err := backend.End(); err != nil {
		t.Fatal(err)
	}

	img := backend.Image()
	center := color.NRGBAModel.Convert(img.At(10, 10)).(color.NRGBA)
	if center.B < 200 || center.R > 60 || center.G > 60 {
		t.Errorf("center pixel = %+v, want blue", center)
	}
	corner := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if corner.R < 240 || corner.G < 240 || corner.B < 240 {
		t.Errorf("corner pixel = %+v, want white background", corner)
	}
}

func TestBackendHollowRectLeavesCenterEmpty(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(testViewport()); err != nil {
		t.Fatal(err)
	}
	if err := backend.DrawHollowRect(anchormark.CenteredBox(anchormark.Pt(10, 10), 12), 1, anchormark.Blue); err != nil {
		t.Fatalf("DrawHollowRect failed: %v", err)
	}
	if err := backend.End(); err != nil {
		t.Fatal(err)
	}

	center := color.NRGBAModel.Convert(backend.Image().At(10, 10)).(color.NRGBA)
	if center.R < 240 || center.G < 240 {
		t.Errorf("center pixel = %+v, want unfilled", center)
	}
}

func TestBackendTransparentBackground(t *testing.T) {
	backend := NewBackend(WithBackground(nil))
	if err := backend.Begin(testViewport()); err != nil {
		t.Fatal(err)
	}
	if err := backend.End(); err != nil {
		t.Fatal(err)
	}
	_, _, _, a := backend.Image().At(3, 3).RGBA()
	if a != 0 {
		t.Errorf("alpha = %d, want 0", a)
	}
}

func TestBackendWriteTo(t *testing.T) {
	rec := recording.NewRecorder()
	_ = rec.DrawHollowEllipse(anchormark.CenteredBox(anchormark.Pt(0, 0), 5), 0.5, anchormark.Blue)
	_ = rec.DrawLine(anchormark.Pt(0, 0), anchormark.Pt(-10, 0), 0.5, anchormark.Blue)
	r := rec.FinishRecording()

	backend := NewBackend()
	if err := r.Playback(backend, r.Viewport(4, 2)); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n == 0 || int(n) != buf.Len() {
		t.Errorf("WriteTo returned %d, buffer holds %d", n, buf.Len())
	}

	pngSig := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if !bytes.HasPrefix(buf.Bytes(), pngSig) {
		t.Fatal("invalid PNG signature")
	}
}
