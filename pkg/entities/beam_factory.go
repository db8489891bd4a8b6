package entities

import (
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/ecs"
)

// NewBeamEntity 创建点火光束实体（火花位置 -> 目标中心）
// 光束以全强度出生，阶段推进和销毁由 EffectSystem 驱动
func NewBeamEntity(manager *ecs.EntityManager, x1, y1, x2, y2 float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.BeamComponent{
		X1:    x1,
		Y1:    y1,
		X2:    x2,
		Y2:    y2,
		AgeMs: 0,
		Alpha: 1.0,
	})

	return id
}
