package game

import (
	"github.com/decker502/railspark/internal/curve"
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
	"github.com/decker502/railspark/pkg/utils"
)

// Session 一次交互会话的全部状态
// 路径状态、显示变换和核心实体ID都挂在这里，由调用方显式持有并
// 传给各系统——不使用全局单例，多个独立实例可以并存，测试也无需
// 真实渲染表面
type Session struct {
	EntityManager *ecs.EntityManager

	// 核心实体，由装配方（app 或测试）在创建实体后填入
	SparkID  ecs.EntityID
	RocketID ecs.EntityID

	scene     *config.SceneConfig
	transform utils.Transform
	path      *curve.Path
	pathState *curve.PathState

	surfaceW float64
	surfaceH float64
}

// NewSession 创建会话并按设计尺寸构建初始路径几何
func NewSession(scene *config.SceneConfig) *Session {
	s := &Session{
		EntityManager: ecs.NewEntityManager(),
		scene:         scene,
	}
	s.RebuildGeometry(config.DesignWidth, config.DesignHeight)
	return s
}

// RebuildGeometry 针对新的渲染表面尺寸重建显示空间几何
// 路径采样点携带显示坐标，所以表面尺寸一变就必须整体重建；
// 重建是幂等的，不携带累积状态。火箭实体（若已装配）的位置和
// 包围盒也在这里按新变换更新
func (s *Session) RebuildGeometry(surfaceW, surfaceH float64) {
	s.surfaceW = surfaceW
	s.surfaceH = surfaceH
	s.transform = utils.FitTransform(surfaceW, surfaceH, config.DesignWidth, config.DesignHeight)

	startX, startY := s.transform.Apply(s.scene.Fuse.Start[0], s.scene.Fuse.Start[1])
	segments := make([]curve.CubicSegment, 0, len(s.scene.Fuse.Segments))
	for _, seg := range s.scene.Fuse.Segments {
		c1x, c1y := s.transform.Apply(seg.Control1[0], seg.Control1[1])
		c2x, c2y := s.transform.Apply(seg.Control2[0], seg.Control2[1])
		ex, ey := s.transform.Apply(seg.End[0], seg.End[1])
		segments = append(segments, curve.CubicSegment{
			Control1: curve.Point{X: c1x, Y: c1y},
			Control2: curve.Point{X: c2x, Y: c2y},
			End:      curve.Point{X: ex, Y: ey},
		})
	}

	s.path = curve.NewCubicPath(curve.Point{X: startX, Y: startY}, segments)
	s.pathState = curve.Rebuild(s.path, config.SampleStep)

	s.syncRocketGeometry()
}

// syncRocketGeometry 按当前变换更新火箭实体的位置和包围盒
func (s *Session) syncRocketGeometry() {
	if s.RocketID == 0 {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, s.RocketID)
	if !ok {
		return
	}
	rocket, ok := ecs.GetComponent[*components.RocketComponent](s.EntityManager, s.RocketID)
	if !ok {
		return
	}

	pos.X, pos.Y = s.transform.Apply(s.scene.Rocket.X, s.scene.Rocket.Y)
	rocket.HalfWidth = s.transform.ApplyLength(s.scene.Rocket.Width / 2)
	rocket.HalfHeight = s.transform.ApplyLength(s.scene.Rocket.Height / 2)
}

// Path 返回当前显示空间的路径曲线
func (s *Session) Path() *curve.Path {
	return s.path
}

// PathState 返回当前采样状态（吸附和渲染共用）
func (s *Session) PathState() *curve.PathState {
	return s.pathState
}

// Transform 返回当前的设计坐标 -> 显示坐标变换
func (s *Session) Transform() utils.Transform {
	return s.transform
}

// Scene 返回场景配置
func (s *Session) Scene() *config.SceneConfig {
	return s.scene
}

// SurfaceSize 返回最近一次重建几何时的渲染表面尺寸
func (s *Session) SurfaceSize() (float64, float64) {
	return s.surfaceW, s.surfaceH
}
