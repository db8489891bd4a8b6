package systems

import "testing"

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		wantR uint8
		wantA uint8
	}{
		{"全不透明", 1.0, 200, 255},
		{"半透明预乘", 0.5, 100, 127},
		{"全透明", 0, 0, 0},
		{"负值钳制", -0.5, 0, 0},
		{"超一钳制", 1.5, 200, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := withAlpha(200, 100, 50, tt.alpha)
			if c.R != tt.wantR {
				t.Errorf("R = %d, want %d", c.R, tt.wantR)
			}
			if c.A != tt.wantA {
				t.Errorf("A = %d, want %d", c.A, tt.wantA)
			}
			// 预乘不变式：任何通道都不超过 alpha 通道
			if c.R > c.A || c.G > c.A || c.B > c.A {
				t.Errorf("premultiplied channels must not exceed alpha: %+v", c)
			}
		})
	}
}
