package systems

import (
	"log"

	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
	"github.com/decker502/railspark/pkg/entities"
	"github.com/decker502/railspark/pkg/game"
)

// EffectState 点火效果序列的阶段
type EffectState int

const (
	// EffectIdle 空闲，等待点火信号
	EffectIdle EffectState = iota
	// EffectValidating 正在校验到达条件（瞬时阶段）
	EffectValidating
	// EffectFiring 光束与粒子爆发已生成，目标尚未开始淡出
	EffectFiring
	// EffectFading 目标淡出中
	EffectFading
	// EffectRemoved 目标已移除，序列终止（不可逆）
	EffectRemoved
)

// EffectSystem 点火效果序列控制器
//
// 序列是单向状态机：Idle -> Validating -> Firing -> Fading -> Removed。
// 点火信号只在 Idle 状态被接受；校验失败（火花未到达目标）只产生
// 一条提示，不留下任何其它副作用，状态回到 Idle。序列一旦进入
// Firing 即不可中断，Removed 是终态。
type EffectSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	audio         *game.AudioManager

	state     EffectState
	elapsedMs float64
	beamID    ecs.EntityID
	burstID   ecs.EntityID
}

// NewEffectSystem 创建效果序列系统
func NewEffectSystem(em *ecs.EntityManager, session *game.Session, audio *game.AudioManager) *EffectSystem {
	return &EffectSystem{
		entityManager: em,
		session:       session,
		audio:         audio,
	}
}

// State 返回序列当前阶段
func (s *EffectSystem) State() EffectState {
	return s.state
}

// TriggerFire 处理点火信号
// 非 Idle 状态下的信号被忽略（序列进行中或已终止）。校验用碰撞
// 系统维护的 Reached 快照：未到达则生成提示并播放蜂鸣，到达则
// 原子地生成光束 + 粒子爆发、清除高亮并进入 Firing。
func (s *EffectSystem) TriggerFire() {
	if s.state != EffectIdle {
		return
	}
	s.state = EffectValidating

	rocket, ok := ecs.GetComponent[*components.RocketComponent](s.entityManager, s.session.RocketID)
	if !ok || !rocket.Visible {
		s.state = EffectIdle
		return
	}

	if !rocket.Reached {
		entities.NewNoticeEntity(s.entityManager, config.NoticeNotReached)
		s.audio.PlaySound(game.SoundBuzzer)
		log.Printf("[EffectSystem] 点火被拒绝: 火花未到达目标")
		s.state = EffectIdle
		return
	}

	sparkPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.session.SparkID)
	if !ok {
		s.state = EffectIdle
		return
	}
	rocketPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.session.RocketID)
	if !ok {
		s.state = EffectIdle
		return
	}

	// 序列开始：高亮立即清除且不再重新点亮
	rocket.Highlighted = false
	rocket.Igniting = true

	s.beamID = entities.NewBeamEntity(s.entityManager,
		sparkPos.X, sparkPos.Y, rocketPos.X, rocketPos.Y)
	s.burstID = entities.NewBurstEntity(s.entityManager,
		rocketPos.X, rocketPos.Y, config.BurstCount, config.BurstLifetimeMillis)
	s.audio.PlaySound(game.SoundFire)

	s.state = EffectFiring
	s.elapsedMs = 0
	log.Printf("[EffectSystem] 点火: 光束 (%.1f, %.1f) -> (%.1f, %.1f), 粒子 %d 个",
		sparkPos.X, sparkPos.Y, rocketPos.X, rocketPos.Y, config.BurstCount)
}

// Update 推进序列时间轴
// dtMs 为本 tick 流逝的毫秒数。Idle / Removed 状态下无事可做。
func (s *EffectSystem) Update(dtMs float64) {
	if s.state != EffectFiring && s.state != EffectFading {
		return
	}
	s.elapsedMs += dtMs

	s.updateBeam()
	s.updateFade()
}

// updateBeam 按时间轴推进光束外观
// [0, BeamDimMillis) 全强度；[BeamDimMillis, BeamEndMillis) 从
// BeamDimAlpha 线性衰减到 0；到达 BeamEndMillis 即销毁光束实体。
func (s *EffectSystem) updateBeam() {
	if s.beamID == 0 {
		return
	}
	beam, ok := ecs.GetComponent[*components.BeamComponent](s.entityManager, s.beamID)
	if !ok {
		s.beamID = 0
		return
	}

	beam.AgeMs = s.elapsedMs
	switch {
	case s.elapsedMs < config.BeamDimMillis:
		beam.Alpha = 1.0
	case s.elapsedMs < config.BeamEndMillis:
		progress := (s.elapsedMs - config.BeamDimMillis) /
			(config.BeamEndMillis - config.BeamDimMillis)
		beam.Alpha = config.BeamDimAlpha * (1 - progress)
	default:
		s.entityManager.DestroyEntity(s.beamID)
		s.beamID = 0
	}
}

// updateFade 按时间轴推进目标淡出
// FadeDelayMillis 后进入 Fading，不透明度在 FadeDurationMillis 内
// 线性降到 0；再经过 RemoveBufferMillis 缓冲后目标标记不可见，
// 序列进入终态。
func (s *EffectSystem) updateFade() {
	if s.elapsedMs < config.FadeDelayMillis {
		return
	}

	rocket, ok := ecs.GetComponent[*components.RocketComponent](s.entityManager, s.session.RocketID)
	if !ok {
		s.state = EffectRemoved
		return
	}

	if s.state == EffectFiring {
		s.state = EffectFading
	}

	fadeAge := s.elapsedMs - config.FadeDelayMillis
	alpha := 1 - fadeAge/config.FadeDurationMillis
	if alpha < 0 {
		alpha = 0
	}
	rocket.Alpha = alpha

	if s.elapsedMs >= config.FadeDelayMillis+config.FadeDurationMillis+config.RemoveBufferMillis {
		rocket.Alpha = 0
		rocket.Visible = false
		rocket.Reached = false
		rocket.Highlighted = false
		s.state = EffectRemoved
		log.Printf("[EffectSystem] 序列完成: 目标已移除")
	}
}
