package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
	"github.com/decker502/railspark/pkg/game"
)

// RenderSystem 场景渲染
//
// 绘制顺序（后画的盖住先画的）：
//  1. 引线全路径（暗色底线）
//  2. 已燃轨迹（亮色覆盖线）
//  3. 目标火箭（含接近高亮描边与淡出透明度）
//  4. 点火光束
//  5. 粒子
//  6. 火花标记
//  7. 提示文本
//
// 所有几何都已由 Session 换算到显示坐标，渲染侧不再做坐标变换。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, session *game.Session) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		session:       session,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawFuse(screen)
	s.drawTrail(screen)
	s.drawRocket(screen)
	s.drawBeams(screen)
	s.drawParticles(screen)
	s.drawSpark(screen)
	s.drawNotices(screen)
}

// drawFuse 绘制引线全路径底线
func (s *RenderSystem) drawFuse(screen *ebiten.Image) {
	samples := s.session.PathState().Samples
	fuseColor := color.RGBA{R: 90, G: 82, B: 70, A: 255}
	for i := 1; i < len(samples); i++ {
		vector.StrokeLine(screen,
			float32(samples[i-1].X), float32(samples[i-1].Y),
			float32(samples[i].X), float32(samples[i].Y),
			config.FuseWidth, fuseColor, true)
	}
}

// drawTrail 绘制已燃轨迹（从起点到火花当前位置的亮色覆盖线）
func (s *RenderSystem) drawTrail(screen *ebiten.Image) {
	trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, s.session.SparkID)
	if !ok {
		return
	}
	trailColor := color.RGBA{R: 255, G: 140, B: 40, A: 255}
	for i := 1; i < len(trail.Points); i++ {
		vector.StrokeLine(screen,
			float32(trail.Points[i-1].X), float32(trail.Points[i-1].Y),
			float32(trail.Points[i].X), float32(trail.Points[i].Y),
			config.TrailWidth, trailColor, true)
	}
}

// drawRocket 绘制目标火箭
// 淡出阶段用组件上的 Alpha 调制填充色；接近高亮时额外画一圈描边
func (s *RenderSystem) drawRocket(screen *ebiten.Image) {
	rocketID := s.session.RocketID
	rocket, ok := ecs.GetComponent[*components.RocketComponent](s.entityManager, rocketID)
	if !ok || !rocket.Visible {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, rocketID)
	if !ok {
		return
	}

	x := float32(pos.X - rocket.HalfWidth)
	y := float32(pos.Y - rocket.HalfHeight)
	w := float32(rocket.HalfWidth * 2)
	h := float32(rocket.HalfHeight * 2)

	vector.DrawFilledRect(screen, x, y, w, h,
		withAlpha(200, 60, 50, rocket.Alpha), true)

	if rocket.Highlighted {
		vector.StrokeRect(screen, x-3, y-3, w+6, h+6, 2,
			color.RGBA{R: 255, G: 230, B: 90, A: 255}, true)
	}
}

// drawBeams 绘制点火光束
func (s *RenderSystem) drawBeams(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.BeamComponent](s.entityManager) {
		beam, ok := ecs.GetComponent[*components.BeamComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vector.StrokeLine(screen,
			float32(beam.X1), float32(beam.Y1),
			float32(beam.X2), float32(beam.Y2),
			config.BeamWidth, withAlpha(255, 240, 160, beam.Alpha), true)
	}
}

// drawParticles 绘制爆发粒子
func (s *RenderSystem) drawParticles(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.entityManager) {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(pos.X), float32(pos.Y), float32(particle.Radius),
			withAlpha(255, 180, 70, particle.Alpha), true)
	}
}

// drawSpark 绘制火花标记
// 拖拽或悬停时用更亮的颜色给出可抓取反馈
func (s *RenderSystem) drawSpark(screen *ebiten.Image) {
	sparkID := s.session.SparkID
	spark, ok := ecs.GetComponent[*components.SparkComponent](s.entityManager, sparkID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, sparkID)
	if !ok {
		return
	}

	sparkColor := color.RGBA{R: 255, G: 200, B: 60, A: 255}
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, sparkID); ok {
		if spark.Dragging || clickable.IsHovered {
			sparkColor = color.RGBA{R: 255, G: 240, B: 140, A: 255}
		}
	}
	vector.DrawFilledCircle(screen,
		float32(pos.X), float32(pos.Y), float32(spark.Radius), sparkColor, true)
}

// drawNotices 绘制短暂提示文本
func (s *RenderSystem) drawNotices(screen *ebiten.Image) {
	_, surfaceH := s.session.SurfaceSize()
	y := int(surfaceH) - 40
	for _, id := range ecs.GetEntitiesWith1[*components.NoticeComponent](s.entityManager) {
		notice, ok := ecs.GetComponent[*components.NoticeComponent](s.entityManager, id)
		if !ok {
			continue
		}
		ebitenutil.DebugPrintAt(screen, notice.Text, 24, y)
		y -= 16
	}
}

// withAlpha 生成按 alpha 预乘后的 RGBA 颜色
func withAlpha(r, g, b uint8, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}
}
