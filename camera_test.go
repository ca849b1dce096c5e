package lens

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	cam, err := NewCamera(800, 600, Target{Width: 8})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	return cam
}

func TestNewCamera(t *testing.T) {
	cam := newTestCamera(t)
	if cam.ViewportWidth() != 800 || cam.ViewportHeight() != 600 {
		t.Errorf("viewport = %dx%d, want 800x600", cam.ViewportWidth(), cam.ViewportHeight())
	}
	if got := cam.Dimensions().PixelRatio; got != 100 {
		t.Errorf("PixelRatio = %d, want 100", got)
	}
	assertNear(t, "Width", cam.Width(), 8)
	assertNear(t, "Height", cam.Height(), 6)
	assertVec(t, "Position", cam.Position, cp.Vector{})
}

func TestNewCameraInvalidTarget(t *testing.T) {
	if _, err := NewCamera(800, 600, Target{Width: 800, Height: 450}); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("both targets: err = %v, want ErrInvalidTarget", err)
	}
	if _, err := NewCamera(800, 600, Target{}); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("no target: err = %v, want ErrInvalidTarget", err)
	}
}

func TestCameraSetWidth(t *testing.T) {
	cam := newTestCamera(t)
	if err := cam.SetWidth(7); err != nil {
		t.Fatalf("SetWidth: %v", err)
	}
	// int(800/7) = 114; the realized extents follow the truncated ratio.
	if got := cam.Dimensions().PixelRatio; got != 114 {
		t.Errorf("PixelRatio = %d, want 114", got)
	}
	assertNear(t, "Width", cam.Width(), 800.0/114.0)
	assertNear(t, "Height", cam.Height(), 600.0/114.0)
}

func TestCameraSetHeight(t *testing.T) {
	cam := newTestCamera(t)
	if err := cam.SetHeight(3); err != nil {
		t.Fatalf("SetHeight: %v", err)
	}
	if got := cam.Dimensions().PixelRatio; got != 200 {
		t.Errorf("PixelRatio = %d, want 200", got)
	}
	assertNear(t, "Width", cam.Width(), 4)
	assertNear(t, "Height", cam.Height(), 3)
}

func TestCameraSetDimensionsInvalid(t *testing.T) {
	cam := newTestCamera(t)
	before := cam.Dimensions()

	err := cam.SetDimensions(Target{Width: 4, Height: 3})
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("SetDimensions with both targets: err = %v, want ErrInvalidTarget", err)
	}
	if cam.Dimensions() != before {
		t.Errorf("dimensions changed on failed set: %+v, want %+v", cam.Dimensions(), before)
	}
}

func TestCameraSetWidthZero(t *testing.T) {
	cam := newTestCamera(t)
	if err := cam.SetWidth(0); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("SetWidth(0): err = %v, want ErrInvalidTarget", err)
	}
	if got := cam.Dimensions().PixelRatio; got != 100 {
		t.Errorf("PixelRatio after failed set = %d, want 100", got)
	}
}

func TestCameraResize(t *testing.T) {
	cam := newTestCamera(t)
	cam.Resize(400, 600)
	// The width target of 8 is retained: int(400/8) = 50.
	if got := cam.Dimensions().PixelRatio; got != 50 {
		t.Errorf("PixelRatio = %d, want 50", got)
	}
	assertNear(t, "Width", cam.Width(), 8)
	assertNear(t, "Height", cam.Height(), 12)
}

func TestCameraResizeAfterSetHeight(t *testing.T) {
	cam := newTestCamera(t)
	if err := cam.SetHeight(6); err != nil {
		t.Fatalf("SetHeight: %v", err)
	}
	cam.Resize(800, 300)
	// The last target was a height of 6: int(300/6) = 50.
	if got := cam.Dimensions().PixelRatio; got != 50 {
		t.Errorf("PixelRatio = %d, want 50", got)
	}
	assertNear(t, "Width", cam.Width(), 16)
	assertNear(t, "Height", cam.Height(), 6)
}

func TestCameraFrameFollowsPosition(t *testing.T) {
	cam := newTestCamera(t)
	cam.Position = cp.Vector{X: 10, Y: -4}
	f := cam.Frame()
	assertNear(t, "Left", f.Left(), 6)
	assertNear(t, "Right", f.Right(), 14)
	assertNear(t, "Bottom", f.Bottom(), -7)
	assertNear(t, "Top", f.Top(), -1)
}

func TestCameraPointVisible(t *testing.T) {
	cam := newTestCamera(t) // frame spans (-4,-3) to (4,3)
	for _, p := range []cp.Vector{
		{}, {X: -4, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: -3}, {X: 4, Y: 3},
	} {
		if !cam.PointVisible(p) {
			t.Errorf("PointVisible(%v,%v) = false, want true", p.X, p.Y)
		}
	}
	for _, p := range []cp.Vector{
		{X: -5, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 4}, {X: 0, Y: -4},
	} {
		if cam.PointVisible(p) {
			t.Errorf("PointVisible(%v,%v) = true, want false", p.X, p.Y)
		}
	}
}

func TestCameraToScreen(t *testing.T) {
	cam := newTestCamera(t)
	assertVec(t, "ToScreen(4,3)", cam.ToScreen(cp.Vector{X: 4, Y: 3}), cp.Vector{X: 800, Y: 0})

	cam.Position = cp.Vector{X: 2, Y: 1}
	p := cp.Vector{X: 3.5, Y: 0.25}
	assertVec(t, "roundtrip", cam.ToGame(cam.ToScreen(p)), p)
}

func BenchmarkCameraToScreen(b *testing.B) {
	cam, err := NewCamera(800, 600, Target{Width: 8})
	if err != nil {
		b.Fatalf("NewCamera: %v", err)
	}
	p := cp.Vector{X: 1.5, Y: -2.25}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = cam.ToScreen(p)
	}
}
