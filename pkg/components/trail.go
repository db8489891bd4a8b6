package components

import "github.com/decker502/railspark/internal/curve"

// TrailComponent 引线上已"燃过"的部分
// 每次火花位置更新后由 SparkSystem 重建：从 0 到当前弧长
// 以较粗步长重采样，末端顶点强制为精确的火花位置，
// 避免轨迹与标记之间出现可见缝隙
type TrailComponent struct {
	Points []curve.Point
}
