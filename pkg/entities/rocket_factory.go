package entities

import (
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/ecs"
)

// NewRocketEntity 创建目标火箭实体
// 参数:
//   - manager: EntityManager 实例
//   - x, y: 包围盒中心（显示坐标）
//   - halfWidth, halfHeight: 包围盒半宽/半高（像素），0 表示几何缺失
//
// 返回: 创建的实体ID
func NewRocketEntity(manager *ecs.EntityManager, x, y, halfWidth, halfHeight float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: y,
	})

	manager.AddComponent(id, &components.RocketComponent{
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		Visible:    true,
		Alpha:      1.0,
	})

	return id
}
