package pixelmath

import (
	"math"
	"testing"
)

func orthoSnapshot() Snapshot {
	return Snapshot{
		ScreenSize:    Size{800, 600},
		AspectStretch: One,
		ZoomLevel:     1,
		PixelsPerUnit: 100,
		PerspectiveZ:  500,
		Downsample:    1,
		FieldOfView:   60,
		FarClipPlane:  1000,
		Orthographic:  true,
	}
}

func TestSnapshotEqual(t *testing.T) {
	base := orthoSnapshot()
	persp := base
	persp.Orthographic = false

	tests := []struct {
		name   string
		a, b   Snapshot
		expect bool
	}{
		{"identical", base, base, true},
		{"zoom within epsilon", base, with(base, func(s *Snapshot) { s.ZoomLevel += Epsilon / 2 }), true},
		{"zoom beyond epsilon", base, with(base, func(s *Snapshot) { s.ZoomLevel += 0.01 }), false},
		{"screen width", base, with(base, func(s *Snapshot) { s.ScreenSize.Width++ }), false},
		{"aspect stretch exact", base, with(base, func(s *Snapshot) { s.AspectStretch.X += Epsilon / 2 }), false},
		{"pixels per unit", base, with(base, func(s *Snapshot) { s.PixelsPerUnit = 16 }), false},
		{"downsample", base, with(base, func(s *Snapshot) { s.Downsample = 2 }), false},
		{"mode switch", base, persp, false},
		{"ortho ignores fov", base, with(base, func(s *Snapshot) { s.FieldOfView = 90 }), true},
		{"ortho ignores perspective z", base, with(base, func(s *Snapshot) { s.PerspectiveZ = 1 }), true},
		{"ortho ignores far clip", base, with(base, func(s *Snapshot) { s.FarClipPlane = 50 }), true},
		{"perspective compares fov", persp, with(persp, func(s *Snapshot) { s.FieldOfView = 90 }), false},
		{"perspective compares z", persp, with(persp, func(s *Snapshot) { s.PerspectiveZ = 1 }), false},
		{"perspective compares far clip", persp, with(persp, func(s *Snapshot) { s.FarClipPlane = 50 }), false},
		{"sentinel never matches", Snapshot{}, base, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expect {
				t.Errorf("Equal() = %v, want %v", got, tt.expect)
			}
			if got := tt.b.Equal(tt.a); got != tt.expect {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.expect)
			}
			if got := HasChanged(tt.a, tt.b); got == tt.expect {
				t.Errorf("HasChanged() = %v, want %v", got, !tt.expect)
			}
		})
	}
}

func TestNormalizeZoom(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{3, 3},
		{0, MinZoom},
		{0.01, MinZoom},
		{-0.01, -MinZoom},
		{-2, -2},
		{math.NaN(), 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 1},
	}
	for _, tt := range tests {
		if got := NormalizeZoom(tt.in); got != tt.want {
			t.Errorf("NormalizeZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampPerspectiveZ(t *testing.T) {
	tests := []struct {
		z, near, far, want float64
	}{
		{5, 0.3, 1000, 5},
		{0, 0.3, 1000, 0.3},
		{2000, 0.3, 1000, 1000},
		{5, 10, 1, 1},
		{math.NaN(), 0.3, 1000, 500},
		{math.Inf(1), 0.3, 1000, 1000},
	}
	for _, tt := range tests {
		if got := ClampPerspectiveZ(tt.z, tt.near, tt.far); got != tt.want {
			t.Errorf("ClampPerspectiveZ(%v, %v, %v) = %v, want %v", tt.z, tt.near, tt.far, got, tt.want)
		}
	}
}

func TestNormalizeStretch(t *testing.T) {
	tests := []struct {
		in, want Vec2
	}{
		{Vec2{2, 1}, Vec2{2, 1}},
		{Vec2{0, 1}, Vec2{0, 1}},
		{Vec2{math.NaN(), 1}, One},
		{Vec2{1, math.Inf(1)}, One},
		{Vec2{math.Inf(-1), 2}, One},
	}
	for _, tt := range tests {
		if got := NormalizeStretch(tt.in); got != tt.want {
			t.Errorf("NormalizeStretch(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEqualNonFinite(t *testing.T) {
	inf := with(orthoSnapshot(), func(s *Snapshot) { s.PixelsPerUnit = math.Inf(1) })
	if !inf.Equal(inf) {
		t.Error("snapshot with infinite pixels per unit is not equal to itself")
	}

	nan := with(orthoSnapshot(), func(s *Snapshot) {
		s.Orthographic = false
		s.FieldOfView = math.NaN()
	})
	if !nan.Equal(nan) {
		t.Error("snapshot with NaN field of view is not equal to itself")
	}
	if nan.Equal(with(nan, func(s *Snapshot) { s.FieldOfView = 60 })) {
		t.Error("NaN field of view equals a finite one")
	}
}

func with(s Snapshot, f func(*Snapshot)) Snapshot {
	f(&s)
	return s
}
