package components

import "github.com/decker502/railspark/pkg/ecs"

// BurstComponent 一次触发生成的粒子批次
// 批次在触发时原子创建，年龄达到生命周期后整批销毁——
// 即使个别粒子在数学上会在略早的时刻到达零不透明度，
// 也不做单粒子提前移除
type BurstComponent struct {
	AgeMs      float64 // 批次年龄（毫秒）
	LifetimeMs float64 // 批次生命周期（毫秒）

	// Particles 本批次生成的粒子实体，销毁时一起清理
	Particles []ecs.EntityID
}
