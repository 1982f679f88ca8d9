package utils

import "testing"

// TestRectContains 测试点击检测边界
func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"左上角", 10, 20, true},
		{"内部", 60, 45, true},
		{"右边界外", 110, 45, false},
		{"下边界外", 60, 70, false},
		{"左侧外", 9, 45, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, 期望 %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestRectGeometry 测试中心与收缩
func TestRectGeometry(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 40}
	if x, y := r.Center(); x != 50 || y != 20 {
		t.Errorf("Center = (%v, %v)", x, y)
	}
	in := r.Inset(10)
	if in != (Rect{X: 10, Y: 10, W: 80, H: 20}) {
		t.Errorf("Inset = %+v", in)
	}
	if !r.Inset(30).Empty() {
		t.Error("over-inset rect should be empty")
	}
}
