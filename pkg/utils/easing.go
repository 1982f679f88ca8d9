package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的值
// 木鱼敲击、提示淡出和开场动画都用这些曲线
//
// 参考：https://easings.net/

// EaseOutCubic 开始快，结束慢
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 开始慢，结束快（木槌落下）
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutBack 越过终点后回弹（木鱼受击后的回弹）
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 截断到 [0, 1]
func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// StrikeCurve 一次敲击的木槌位移：[0, strikeAt] 抬起后落下，之后回到静止
// 返回 0（静止）~ 1（最高点）
func StrikeCurve(progress, strikeAt float64) float64 {
	progress = Clamp01(progress)
	if strikeAt <= 0 || strikeAt >= 1 {
		strikeAt = 0.3
	}
	if progress <= strikeAt {
		// 抬起到最高点再落下
		half := strikeAt / 2
		if progress < half {
			return EaseOutCubic(progress / half)
		}
		return 1 - EaseInCubic((progress-half)/half)
	}
	return 0
}
