package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
)

// NewBurstEntity 在 (x, y) 原子地创建一批粒子
// 批次实体记录所有粒子ID，生命周期结束时由 ParticleSystem 整批销毁。
// 每个粒子获得 [0, 2π) 均匀随机方向和固定区间内的均匀随机速度/半径。
//
// 参数:
//   - manager: EntityManager 实例
//   - x, y: 爆发原点（显示坐标，所有粒子的初始位置）
//   - count: 粒子数量
//   - lifetimeMs: 批次生命周期（毫秒）
//
// 返回: 批次实体ID
func NewBurstEntity(manager *ecs.EntityManager, x, y float64, count int, lifetimeMs float64) ecs.EntityID {
	burstID := manager.CreateEntity()

	particles := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		particles = append(particles, newBurstParticle(manager, x, y, lifetimeMs))
	}

	manager.AddComponent(burstID, &components.BurstComponent{
		AgeMs:      0,
		LifetimeMs: lifetimeMs,
		Particles:  particles,
	})

	return burstID
}

// newBurstParticle 创建单个粒子实体
func newBurstParticle(manager *ecs.EntityManager, x, y, lifetimeMs float64) ecs.EntityID {
	id := manager.CreateEntity()

	angle := rand.Float64() * 2 * math.Pi
	speed := randomInRange(config.ParticleSpeedMin, config.ParticleSpeedMax)
	radius := randomInRange(config.ParticleRadiusMin, config.ParticleRadiusMax)

	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: y,
	})

	manager.AddComponent(id, &components.ParticleComponent{
		VelocityX:  math.Cos(angle) * speed,
		VelocityY:  math.Sin(angle) * speed,
		AgeMs:      0,
		LifetimeMs: lifetimeMs,
		Radius:     radius,
		Alpha:      1.0,
	})

	return id
}

// randomInRange 返回 [min, max) 内的均匀随机值
func randomInRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rand.Float64()*(max-min)
}
