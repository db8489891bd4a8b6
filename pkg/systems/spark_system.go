package systems

import (
	"log"

	"github.com/decker502/railspark/internal/curve"
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
	"github.com/decker502/railspark/pkg/game"
)

// SparkSystem 火花标记控制器
//
// 持有火花弧长位置的唯一修改权：所有位置变更（拖拽吸附、
// 表面尺寸变化后的重放置）都经过 SetPosition。每次成功的位置
// 更新都同步完成接近重检——碰撞状态永远不会相对火花位置过期。
type SparkSystem struct {
	entityManager   *ecs.EntityManager
	session         *game.Session
	collisionSystem *CollisionSystem
}

// NewSparkSystem 创建火花控制系统
func NewSparkSystem(em *ecs.EntityManager, session *game.Session, cs *CollisionSystem) *SparkSystem {
	return &SparkSystem{
		entityManager:   em,
		session:         session,
		collisionSystem: cs,
	}
}

// SetPosition 把火花移动到指定弧长
// 输入先钳制到 [0, 路径总长]；随后更新标记位置、重建已燃轨迹、
// 同步触发接近重检。返回钳制后的弧长。
func (s *SparkSystem) SetPosition(arcLength float64) float64 {
	sparkID := s.session.SparkID
	spark, ok := ecs.GetComponent[*components.SparkComponent](s.entityManager, sparkID)
	if !ok {
		return 0
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, sparkID)
	if !ok {
		return 0
	}

	path := s.session.Path()
	total := path.Length()
	if arcLength < 0 {
		arcLength = 0
	} else if arcLength > total {
		arcLength = total
	}

	spark.ArcLength = arcLength

	tip := path.PointAt(arcLength)
	pos.X = tip.X
	pos.Y = tip.Y

	s.rebuildTrail(sparkID, arcLength, tip)

	// 位置更新的收尾必须是接近重检，保持碰撞状态与火花位置同步
	s.collisionSystem.Check(tip.X, tip.Y)

	return arcLength
}

// rebuildTrail 重建已燃轨迹折线
// 从 0 到当前弧长按 TrailStep 重采样，末端顶点强制为精确的
// 火花位置而非步长取整的近似值，避免轨迹和标记之间出现缝隙
func (s *SparkSystem) rebuildTrail(sparkID ecs.EntityID, arcLength float64, tip curve.Point) {
	trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, sparkID)
	if !ok {
		return
	}

	path := s.session.Path()
	points := make([]curve.Point, 0, int(arcLength/config.TrailStep)+2)
	for arc := 0.0; arc < arcLength; arc += config.TrailStep {
		points = append(points, path.PointAt(arc))
	}
	points = append(points, tip)

	trail.Points = points
}

// HandleResize 响应渲染表面尺寸变化
// 重建显示空间几何后把火花重新吸附到保留的弧长上（只做范围
// 钳制，绝不重置回起点），并在新几何下重建轨迹、重检接近状态。
func (s *SparkSystem) HandleResize(surfaceW, surfaceH float64) {
	spark, ok := ecs.GetComponent[*components.SparkComponent](s.entityManager, s.session.SparkID)
	if !ok {
		return
	}
	keptArc := spark.ArcLength

	s.session.RebuildGeometry(surfaceW, surfaceH)
	applied := s.SetPosition(keptArc)

	log.Printf("[SparkSystem] 表面尺寸变化: %vx%v, 弧长 %.1f -> %.1f",
		surfaceW, surfaceH, keptArc, applied)
}
