package entities

import (
	"github.com/decker502/railspark/internal/curve"
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
)

// NewSparkEntity 创建火花标记实体（路径约束的可拖拽点）
// 参数:
//   - manager: EntityManager 实例
//   - x, y: 初始位置（显示坐标，通常是路径起点）
//   - radius: 渲染半径（像素）
//
// 返回: 创建的实体ID
func NewSparkEntity(manager *ecs.EntityManager, x, y, radius float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: y,
	})

	manager.AddComponent(id, &components.SparkComponent{
		ArcLength: 0,
		Radius:    radius,
	})

	// 轨迹初始为空，火花一动就由 SparkSystem 重建
	manager.AddComponent(id, &components.TrailComponent{
		Points: []curve.Point{},
	})

	// 可点击区域比渲染半径大一圈，拖拽起手更容易
	hitSize := 2 * (radius + config.SparkHitPadding)
	manager.AddComponent(id, &components.ClickableComponent{
		Width:     hitSize,
		Height:    hitSize,
		IsEnabled: true,
	})

	return id
}
