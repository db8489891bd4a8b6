// Package utils 提供坐标转换等通用工具函数
//
// coordinates.go 处理设计坐标与显示坐标之间的转换。
//
// # 坐标系统概述
//
// 本项目使用两套坐标系统：
//   - **设计坐标**：场景配置（引线控制点、火箭位置）使用的固定逻辑坐标，
//     以 800x600 的设计面为基准
//   - **显示坐标**：相对于当前渲染表面左上角的像素坐标，
//     随窗口尺寸变化；路径采样、碰撞检测、粒子运动都在显示坐标中进行
//
// 显示变换在每次渲染表面尺寸变化时重算，路径采样随之整体重建。
package utils

import "math"

// Transform 设计坐标 -> 显示坐标的等比变换
// 保持纵横比缩放并在窗口中居中（letterbox）
type Transform struct {
	Scale   float64 // 等比缩放系数
	OffsetX float64 // 显示坐标系中的水平偏移（像素）
	OffsetY float64 // 显示坐标系中的垂直偏移（像素）
}

// FitTransform 计算把 designW x designH 的设计面等比放入
// surfaceW x surfaceH 显示表面的变换
func FitTransform(surfaceW, surfaceH, designW, designH float64) Transform {
	if surfaceW <= 0 || surfaceH <= 0 || designW <= 0 || designH <= 0 {
		return Transform{Scale: 1}
	}
	scale := math.Min(surfaceW/designW, surfaceH/designH)
	return Transform{
		Scale:   scale,
		OffsetX: (surfaceW - designW*scale) / 2,
		OffsetY: (surfaceH - designH*scale) / 2,
	}
}

// Apply 将设计坐标转换为显示坐标
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.OffsetX, y*t.Scale + t.OffsetY
}

// ApplyLength 将设计坐标系中的长度换算到显示坐标系
func (t Transform) ApplyLength(l float64) float64 {
	return l * t.Scale
}

// PointerToScene 将指针设备坐标转换为显示（场景）坐标
// ebiten 已经把 HiDPI 设备像素折算到逻辑坐标，这里只做类型归一，
// 保留这个接缝是为了让输入路由不直接依赖设备坐标的整数表示
func PointerToScene(deviceX, deviceY int) (float64, float64) {
	return float64(deviceX), float64(deviceY)
}

// PointInCenteredBox 检测点是否落在以 (cx, cy) 为中心、
// 尺寸为 w x h 的轴对齐包围盒内（含边界）
func PointInCenteredBox(px, py, cx, cy, w, h float64) bool {
	halfW := w / 2
	halfH := h / 2
	return px >= cx-halfW && px <= cx+halfW &&
		py >= cy-halfH && py <= cy+halfH
}
