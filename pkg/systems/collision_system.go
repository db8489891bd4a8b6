package systems

import (
	"math"

	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
	"github.com/decker502/railspark/pkg/game"
)

// CollisionSystem 火花与目标的接近检测
//
// 判定是无记忆的对称谓词：每次调用都用当下的火花位置和目标几何
// 全量重算，没有迟滞也没有防抖。火花移开后 reached 会翻回 false。
// 目标几何在每次检测时从组件现场读取，不做缓存。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
}

// NewCollisionSystem 创建接近检测系统
func NewCollisionSystem(em *ecs.EntityManager, session *game.Session) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		session:       session,
	}
}

// Check 用给定的火花位置重算接近状态
// 阈值 = ReachFactor * max(目标宽度, 目标高度)；距离小于等于阈值
// 即视为到达。零尺寸目标（几何缺失）恒为 false，已移除的目标
// 不再参与检测。Reached 和高亮呈现状态同步切换。
func (s *CollisionSystem) Check(tipX, tipY float64) bool {
	rocketID := s.session.RocketID
	if rocketID == 0 {
		return false
	}

	rocket, ok := ecs.GetComponent[*components.RocketComponent](s.entityManager, rocketID)
	if !ok {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, rocketID)
	if !ok {
		return false
	}

	// 已移除的目标几何不再有意义
	if !rocket.Visible {
		rocket.Reached = false
		rocket.Highlighted = false
		return false
	}

	width := rocket.HalfWidth * 2
	height := rocket.HalfHeight * 2
	threshold := config.ReachFactor * math.Max(width, height)

	reached := false
	if threshold > 0 {
		dx := tipX - pos.X
		dy := tipY - pos.Y
		reached = math.Sqrt(dx*dx+dy*dy) <= threshold
	}

	rocket.Reached = reached
	// 点火序列开始后高亮已被清除，不再重新点亮
	rocket.Highlighted = reached && !rocket.Igniting
	return reached
}
