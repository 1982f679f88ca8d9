package utils

// Rect 轴对齐矩形（逻辑坐标），用于按钮布局与点击检测
type Rect struct {
	X, Y, W, H float64
}

// Contains 点是否在矩形内（左上闭、右下开）
func (r Rect) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.X && fx < r.X+r.W && fy >= r.Y && fy < r.Y+r.H
}

// Center 矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset 四边各向内收缩 d
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Empty 宽或高不为正
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
