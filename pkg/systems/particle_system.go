package systems

import (
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
)

// ParticleSystem 粒子爆发的生命周期与运动积分
//
// 积分器每个 tick 前进固定 FrameMillis 一帧，不测量真实流逝时间：
// 固定时间步让粒子轨迹完全可复现，TPS 偏离 60 时动画整体变速。
// 粒子不做单独移除——批次到期时整批销毁，到期前所有粒子都保留，
// 透明度由年龄重算得出。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 推进所有粒子爆发一个固定帧
func (s *ParticleSystem) Update() {
	for _, burstID := range ecs.GetEntitiesWith1[*components.BurstComponent](s.entityManager) {
		s.updateBurst(burstID)
	}
}

// updateBurst 推进单个批次
// 批次到期时连同全部粒子一起销毁；否则逐粒子积分运动并重算透明度
func (s *ParticleSystem) updateBurst(burstID ecs.EntityID) {
	burst, ok := ecs.GetComponent[*components.BurstComponent](s.entityManager, burstID)
	if !ok {
		return
	}

	burst.AgeMs += config.FrameMillis
	if burst.AgeMs >= burst.LifetimeMs {
		for _, particleID := range burst.Particles {
			s.entityManager.DestroyEntity(particleID)
		}
		s.entityManager.DestroyEntity(burstID)
		return
	}

	for _, particleID := range burst.Particles {
		s.stepParticle(particleID)
	}
}

// stepParticle 对单个粒子积分一个固定帧
// 垂直方向在速度之外叠加随年龄增长的下坠项；透明度不是状态量，
// 每帧由年龄与生命周期之比重算
func (s *ParticleSystem) stepParticle(particleID ecs.EntityID) {
	particle, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, particleID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, particleID)
	if !ok {
		return
	}

	particle.AgeMs += config.FrameMillis

	pos.X += particle.VelocityX * config.FrameMillis
	pos.Y += particle.VelocityY*config.FrameMillis + config.ParticleGravity*particle.AgeMs

	alpha := 1 - particle.AgeMs/particle.LifetimeMs
	if alpha < 0 {
		alpha = 0
	}
	particle.Alpha = alpha
}
