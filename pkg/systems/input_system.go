package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/railspark/internal/curve"
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/ecs"
	"github.com/decker502/railspark/pkg/game"
	"github.com/decker502/railspark/pkg/utils"
)

// PointerCapturer 指针捕获能力的抽象
// 拖拽会话开始时捕获指针，让移动事件在指针离开火花命中区后
// 仍然送达；Release 允许失败（设备已释放或已不存在）
type PointerCapturer interface {
	Capture()
	Release() error
}

// nopCapturer 缺省实现：ebiten 的轮询输入天然持续送达，无需真实捕获
type nopCapturer struct{}

func (nopCapturer) Capture()       {}
func (nopCapturer) Release() error { return nil }

// InputSystem 把指针设备事件路由到拖拽会话
//
// 按下：命中火花可点击区则开始拖拽会话并捕获指针；
// 移动：会话进行中把设备坐标换算到路径坐标空间，经最近点
// 吸附解析为弧长后转发给 SparkSystem；
// 抬起：结束会话并释放捕获，释放失败安静地忽略。
type InputSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	sparkSystem   *SparkSystem
	effectSystem  *EffectSystem
	capturer      PointerCapturer

	dragging bool
}

// NewInputSystem 创建输入路由系统
// capturer 为 nil 时使用空实现
func NewInputSystem(em *ecs.EntityManager, session *game.Session, ss *SparkSystem, es *EffectSystem, capturer PointerCapturer) *InputSystem {
	if capturer == nil {
		capturer = nopCapturer{}
	}
	return &InputSystem{
		entityManager: em,
		session:       session,
		sparkSystem:   ss,
		effectSystem:  es,
		capturer:      capturer,
	}
}

// Update 轮询 ebiten 输入并分发为按下/移动/抬起事件
// 空格键是点火信号
func (s *InputSystem) Update() {
	x, y := utils.PointerToScene(ebiten.CursorPosition())

	s.updateSparkHover(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.HandlePress(x, y)
	} else if s.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.HandleMove(x, y)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.HandleRelease()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.effectSystem.TriggerFire()
	}
}

// HandlePress 处理指针按下
// 只有命中火花的可点击区域才开始拖拽会话
func (s *InputSystem) HandlePress(x, y float64) {
	sparkID := s.session.SparkID
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, sparkID)
	if !ok {
		return
	}
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, sparkID)
	if !ok || !clickable.IsEnabled {
		return
	}

	if !utils.PointInCenteredBox(x, y, pos.X, pos.Y, clickable.Width, clickable.Height) {
		return
	}

	s.dragging = true
	s.setSparkDragging(true)
	s.capturer.Capture()
	log.Printf("[InputSystem] 开始拖拽会话: 按下位置 (%.1f, %.1f)", x, y)

	// 按下点本身也参与一次吸附，标记立刻贴到指针下方的轨道位置
	s.HandleMove(x, y)
}

// HandleMove 处理指针移动
// 非拖拽状态下的移动被忽略；拖拽中把自由指针位置投影到一维
// 弧长域再应用——这正是标记"贴轨"手感的来源
func (s *InputSystem) HandleMove(x, y float64) {
	if !s.dragging {
		return
	}
	arc := curve.Nearest(x, y, s.session.PathState())
	s.sparkSystem.SetPosition(arc)
}

// HandleRelease 处理指针抬起，结束拖拽会话
// 捕获释放失败（设备已释放或已不存在）不中断处理、不向上暴露
func (s *InputSystem) HandleRelease() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.setSparkDragging(false)

	if err := s.capturer.Release(); err != nil {
		// 指针可能已被系统释放，安静地忽略
		_ = err
	}
	log.Printf("[InputSystem] 结束拖拽会话")
}

// IsDragging 返回当前是否处于拖拽会话中
func (s *InputSystem) IsDragging() bool {
	return s.dragging
}

// setSparkDragging 同步火花组件上的拖拽标记（渲染高亮用）
func (s *InputSystem) setSparkDragging(dragging bool) {
	if spark, ok := ecs.GetComponent[*components.SparkComponent](s.entityManager, s.session.SparkID); ok {
		spark.Dragging = dragging
	}
}

// updateSparkHover 更新火花可点击区域的悬停状态（手形光标反馈用）
func (s *InputSystem) updateSparkHover(x, y float64) {
	sparkID := s.session.SparkID
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, sparkID)
	if !ok {
		return
	}
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, sparkID)
	if !ok {
		return
	}
	clickable.IsHovered = clickable.IsEnabled &&
		utils.PointInCenteredBox(x, y, pos.X, pos.Y, clickable.Width, clickable.Height)
}
