package pixelcam

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/pixelcam/shared/pixelmath"
)

func TestCameraLifecycle(t *testing.T) {
	r := newRig()
	if got := r.cam.State(); got != Disabled {
		t.Fatalf("State() = %v, want %v", got, Disabled)
	}

	r.cam.OnTick()
	if len(r.buffers.created) != 0 {
		t.Fatal("disabled camera allocated a buffer")
	}

	r.cam.OnEnable()
	if got := r.cam.State(); got != Enabling {
		t.Fatalf("State() after OnEnable = %v, want %v", got, Enabling)
	}

	r.cam.OnTick()
	if got := r.cam.State(); got != Active {
		t.Fatalf("State() after first tick = %v, want %v", got, Active)
	}
	if len(r.buffers.created) != 1 {
		t.Fatalf("created %d buffers on first tick, want 1", len(r.buffers.created))
	}

	r.cam.OnDisable()
	if got := r.cam.State(); got != Disabled {
		t.Fatalf("State() after OnDisable = %v, want %v", got, Disabled)
	}
	if !r.buffers.created[0].released {
		t.Error("buffer not released on disable")
	}
	if !r.shader.materials[0].destroyed {
		t.Error("fallback material not destroyed on disable")
	}
	if r.host.target != nil {
		t.Error("host camera still targets the buffer after disable")
	}
	if r.host.resets == 0 {
		t.Error("host aspect not reset on disable")
	}
}

func TestCameraRecomputeOrthographic(t *testing.T) {
	r := newRig()
	r.enable()

	b := r.buffers.created[0]
	if want := (pixelmath.Size{Width: 800, Height: 600}); b.desc.Size != want {
		t.Errorf("buffer size = %v, want %v", b.desc.Size, want)
	}
	if b.desc.Filter != FilterNearest || b.desc.Wrap != WrapClamp {
		t.Errorf("buffer sampling = %v/%v, want nearest/clamp", b.desc.Filter, b.desc.Wrap)
	}
	if r.host.orthoSize != 3 {
		t.Errorf("orthographic size = %v, want 3", r.host.orthoSize)
	}
	if want := 800.0 / 600; r.host.aspect != want {
		t.Errorf("aspect = %v, want %v", r.host.aspect, want)
	}
	if r.host.target != Buffer(b) {
		t.Error("buffer not assigned to host camera")
	}
	if r.host.renders != 1 {
		t.Errorf("RenderNow called %d times, want 1", r.host.renders)
	}
	if len(r.compositor.draws) != 1 {
		t.Fatalf("DrawQuad called %d times, want 1", len(r.compositor.draws))
	}
	d := r.compositor.draws[0]
	if d.texture != Buffer(b) {
		t.Error("quad drawn without the new buffer bound")
	}
	if d.quad != pixelmath.FullScreen {
		t.Errorf("quad = %+v, want %+v", d.quad, pixelmath.FullScreen)
	}
	if got := r.cam.CameraSize(); got != (pixelmath.Size{Width: 800, Height: 600}) {
		t.Errorf("CameraSize() = %v", got)
	}
}

func TestCameraIdleTickDrawsOnce(t *testing.T) {
	r := newRig()
	r.enable()

	for i := 0; i < 5; i++ {
		r.cam.OnTick()
	}
	if len(r.buffers.created) != 1 {
		t.Errorf("created %d buffers, want 1", len(r.buffers.created))
	}
	if got := len(r.compositor.draws); got != 6 {
		t.Errorf("DrawQuad called %d times over 6 ticks, want 6", got)
	}
	if r.host.renders != 1 {
		t.Errorf("RenderNow called %d times, want 1", r.host.renders)
	}
}

func TestCheckAndRecomputeIdempotent(t *testing.T) {
	r := newRig()
	r.enable()

	quad := r.cam.QuadBounds()
	desc := r.cam.Descriptor()
	if r.cam.CheckAndRecomputeIfNeeded() {
		t.Error("CheckAndRecomputeIfNeeded() = true with unchanged inputs")
	}
	if r.cam.QuadBounds() != quad || r.cam.Descriptor() != desc {
		t.Error("unchanged inputs altered the layout")
	}
}

func TestCameraRecomputesOnChange(t *testing.T) {
	tests := []struct {
		name   string
		change func(r *rig)
		want   bool
	}{
		{"screen resize", func(r *rig) { r.compositor.w = 801 }, true},
		{"zoom", func(r *rig) { r.cam.SetZoomLevel(2) }, true},
		{"zoom clamps to same value", func(r *rig) { r.cam.SetZoomLevel(1 + pixelmath.Epsilon/10) }, false},
		{"pixels per unit", func(r *rig) { r.cam.SetPixelsPerUnit(16) }, true},
		{"invalid pixels per unit ignored", func(r *rig) { r.cam.SetPixelsPerUnit(0) }, false},
		{"mode switch", func(r *rig) { r.host.ortho = false }, true},
		{"fov ignored in orthographic mode", func(r *rig) { r.host.fov = 90 }, false},
		{"far clip ignored in orthographic mode", func(r *rig) { r.host.far = 10 }, false},
		{"downsample", func(r *rig) { r.cam.SetAdvanced(&AdvancedSettings{AspectStretch: pixelmath.One, Downsample: 2}) }, true},
		{"force refresh", func(r *rig) { r.cam.ForceRefresh() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			r.enable()
			tt.change(r)
			if got := r.cam.CheckAndRecomputeIfNeeded(); got != tt.want {
				t.Errorf("CheckAndRecomputeIfNeeded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraOddScreenWidth(t *testing.T) {
	r := newRig()
	r.compositor.w = 801
	r.enable()

	if got, want := r.cam.Descriptor(), (pixelmath.Size{Width: 802, Height: 600}); got != want {
		t.Errorf("Descriptor() = %v, want %v", got, want)
	}
	q := r.cam.QuadBounds()
	if want := -0.5 / 801; q.Min.X != want {
		t.Errorf("quad Min.X = %v, want %v", q.Min.X, want)
	}
	if q.Min.Y != 0 || q.Max.Y != 1 {
		t.Errorf("quad y = [%v, %v], want [0, 1]", q.Min.Y, q.Max.Y)
	}
}

func TestCameraDownsample(t *testing.T) {
	r := newRig(WithAdvanced(AdvancedSettings{AspectStretch: pixelmath.One, Downsample: 2}))
	r.enable()

	if got, want := r.cam.Descriptor(), (pixelmath.Size{Width: 400, Height: 300}); got != want {
		t.Errorf("Descriptor() = %v, want %v", got, want)
	}
	if r.host.orthoSize != 3 {
		t.Errorf("orthographic size = %v, want 3", r.host.orthoSize)
	}
}

func TestCameraPerspective(t *testing.T) {
	r := newRig(WithPixelsPerUnit(10), WithAdvanced(AdvancedSettings{AspectStretch: pixelmath.One, PerspectiveZ: 10, Downsample: 1}))
	r.host.ortho = false
	r.host.fov = 90
	r.host.orthoSize = -1
	r.enable()

	if got, want := r.cam.Descriptor(), (pixelmath.Size{Width: 268, Height: 200}); got != want {
		t.Errorf("Descriptor() = %v, want %v", got, want)
	}
	if r.host.orthoSize != -1 {
		t.Error("orthographic size written in perspective mode")
	}
	if r.host.aspect != 1.34 {
		t.Errorf("aspect = %v, want 1.34", r.host.aspect)
	}

	r.host.fov = 60
	if !r.cam.CheckAndRecomputeIfNeeded() {
		t.Error("fov change ignored in perspective mode")
	}
}

func TestCameraPerspectiveZClamped(t *testing.T) {
	r := newRig(WithAdvanced(AdvancedSettings{PerspectiveZ: 5000}))
	r.host.ortho = false
	if got := r.cam.Capture().PerspectiveZ; got != r.host.far {
		t.Errorf("PerspectiveZ = %v, want far clip %v", got, r.host.far)
	}

	r = newRig(WithAdvanced(AdvancedSettings{PerspectiveZ: -1}))
	if got := r.cam.Capture().PerspectiveZ; got != r.host.near {
		t.Errorf("PerspectiveZ = %v, want near clip %v", got, r.host.near)
	}
}

func TestCameraNonFiniteInputsSettle(t *testing.T) {
	tests := []struct {
		name        string
		perspective bool
		apply       func(r *rig)
	}{
		{"NaN stretch", false, func(r *rig) {
			r.cam.SetAdvanced(&AdvancedSettings{AspectStretch: pixelmath.Vec2{X: math.NaN(), Y: 1}, Downsample: 1})
		}},
		{"infinite stretch", false, func(r *rig) {
			r.cam.SetAdvanced(&AdvancedSettings{AspectStretch: pixelmath.Vec2{X: 1, Y: math.Inf(1)}, Downsample: 1})
		}},
		{"infinite zoom", false, func(r *rig) { r.cam.SetZoomLevel(math.Inf(1)) }},
		{"NaN zoom", false, func(r *rig) { r.cam.SetZoomLevel(math.NaN()) }},
		{"infinite pixels per unit", false, func(r *rig) { r.cam.SetPixelsPerUnit(math.Inf(1)) }},
		{"infinite downsample", false, func(r *rig) {
			r.cam.SetAdvanced(&AdvancedSettings{AspectStretch: pixelmath.One, Downsample: math.Inf(1)})
		}},
		{"NaN perspective depth", true, func(r *rig) {
			r.cam.SetAdvanced(&AdvancedSettings{AspectStretch: pixelmath.One, PerspectiveZ: math.NaN(), Downsample: 1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			r.host.ortho = !tt.perspective
			r.enable()
			tt.apply(r)
			r.cam.CheckAndRecomputeIfNeeded()

			for i := 0; i < 5; i++ {
				if r.cam.CheckAndRecomputeIfNeeded() {
					t.Fatalf("check %d recomputed with unchanged inputs", i)
				}
			}
			q := r.cam.QuadBounds()
			for _, v := range []float64{q.Min.X, q.Min.Y, q.Max.X, q.Max.Y} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("QuadBounds() = %+v, want finite", q)
				}
			}
		})
	}
}

func TestCaptureDefaultsWithoutAdvanced(t *testing.T) {
	r := newRig()
	s := r.cam.Capture()
	if s.AspectStretch != pixelmath.One {
		t.Errorf("AspectStretch = %v, want %v", s.AspectStretch, pixelmath.One)
	}
	if s.PerspectiveZ != r.host.far/2 {
		t.Errorf("PerspectiveZ = %v, want %v", s.PerspectiveZ, r.host.far/2)
	}
	if s.Downsample != 1 {
		t.Errorf("Downsample = %v, want 1", s.Downsample)
	}
}

func TestCaptureNormalizesZoomWithoutSideEffects(t *testing.T) {
	r := newRig(WithZoomLevel(0))
	if got := r.cam.Capture().ZoomLevel; got != pixelmath.MinZoom {
		t.Errorf("captured ZoomLevel = %v, want %v", got, pixelmath.MinZoom)
	}
	if r.cam.cfg.ZoomLevel != 0 {
		t.Error("Capture() modified the configured zoom")
	}
	r.cam.SetZoomLevel(-0.01)
	if got := r.cam.ZoomLevel(); got != -pixelmath.MinZoom {
		t.Errorf("ZoomLevel() = %v, want %v", got, -pixelmath.MinZoom)
	}
}

func TestCameraUnbindsBeforeRelease(t *testing.T) {
	override := &fakeMaterial{name: "override"}
	r := newRig()
	r.buffers.materials = append(r.buffers.materials, override)
	r.enable()
	r.cam.SetMaterial(override)

	if override.tex != r.cam.Buffer() {
		t.Fatal("override material not bound to current buffer")
	}

	r.compositor.w = 640
	r.cam.OnTick()

	if len(r.buffers.boundAtRelease) != 1 {
		t.Fatalf("released %d buffers, want 1", len(r.buffers.boundAtRelease))
	}
	if r.buffers.boundAtRelease[0] {
		t.Error("buffer released while still bound to a material")
	}
	if r.host.targetLogs[len(r.host.targetLogs)-2] != nil {
		t.Error("host target not cleared before the new buffer was assigned")
	}
	if override.tex != r.cam.Buffer() || r.shader.materials[0].tex != r.cam.Buffer() {
		t.Error("new buffer not bound to both materials")
	}
	last := r.compositor.draws[len(r.compositor.draws)-1]
	if last.material != Material(override) {
		t.Error("quad not drawn with the override material")
	}
}

func TestSetMaterialNilRemovesOverride(t *testing.T) {
	override := &fakeMaterial{name: "override"}
	r := newRig()
	r.enable()
	r.cam.SetMaterial(override)
	if r.cam.CameraMaterial() != Material(override) {
		t.Fatal("CameraMaterial() is not the override")
	}

	r.cam.SetMaterial(nil)
	if r.cam.CameraMaterial() != Material(r.shader.materials[0]) {
		t.Error("CameraMaterial() did not fall back after removing override")
	}
	if override.tex != nil {
		t.Error("removed override still bound to the buffer")
	}
}

func TestCameraInitFailure(t *testing.T) {
	tests := []struct {
		name   string
		shader Shader
	}{
		{"nil shader", nil},
		{"shader error", &fakeShader{err: errShaderMissing}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newFakeHost()
			buffers := &fakeBuffers{}
			comp := &fakeCompositor{w: 800, h: 600}
			cam := New(host, buffers, comp, tt.shader, NewConfig())

			cam.OnEnable()
			if cam.State() != Disabled || !cam.Failed() {
				t.Fatalf("State() = %v, Failed() = %v, want disabled and failed", cam.State(), cam.Failed())
			}
			for i := 0; i < 3; i++ {
				cam.OnTick()
			}
			if len(buffers.created) != 0 || len(comp.draws) != 0 || host.renders != 0 {
				t.Error("failed camera did work on tick")
			}
			if cam.CheckAndRecomputeIfNeeded() {
				t.Error("failed camera recomputed")
			}
		})
	}
}

func TestCameraReEnableAfterFailure(t *testing.T) {
	r := newRig()
	r.shader.err = errShaderMissing
	r.cam.OnEnable()
	if !r.cam.Failed() {
		t.Fatal("expected failure")
	}

	r.shader.err = nil
	r.enable()
	if r.cam.Failed() || r.cam.State() != Active {
		t.Errorf("State() = %v, Failed() = %v after re-enable", r.cam.State(), r.cam.Failed())
	}
	if len(r.buffers.created) != 1 {
		t.Errorf("created %d buffers, want 1", len(r.buffers.created))
	}
}

func TestCameraBufferCreateError(t *testing.T) {
	r := newRig()
	r.buffers.err = errors.New("out of memory")
	r.enable()

	if r.cam.Buffer() != nil {
		t.Error("Buffer() non-nil after failed allocation")
	}
	if r.cam.CheckAndRecomputeIfNeeded() {
		t.Error("failed allocation retried without an input change")
	}
	r.cam.OnTick()
	if len(r.compositor.draws) != 0 {
		t.Error("quad drawn without a buffer")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.PixelsPerUnit != DefaultPixelsPerUnit || c.ZoomLevel != DefaultZoomLevel || c.Advanced != nil {
		t.Errorf("NewConfig() = %+v", c)
	}
	c = NewConfig(WithPixelsPerUnit(-5), WithZoomLevel(3))
	if c.PixelsPerUnit != DefaultPixelsPerUnit {
		t.Errorf("WithPixelsPerUnit(-5) changed density to %v", c.PixelsPerUnit)
	}
	if c.ZoomLevel != 3 {
		t.Errorf("ZoomLevel = %v, want 3", c.ZoomLevel)
	}
}
