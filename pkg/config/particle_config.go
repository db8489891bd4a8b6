package config

// 粒子爆发的默认调参
// 速度单位是像素/毫秒；积分器每个 tick 前进固定 FrameMillis 一帧，
// 不测量真实流逝时间（固定时间步，60 TPS 下每 tick 恰好一帧）

const (
	// FrameMillis 粒子积分的固定帧时长（毫秒）
	FrameMillis = 16.0

	// BurstCount 一次爆发生成的粒子数量
	BurstCount = 26

	// BurstLifetimeMillis 爆发生命周期（毫秒），整批粒子同时销毁
	BurstLifetimeMillis = 900.0

	// ParticleSpeedMin 粒子初速度下限（像素/毫秒）
	ParticleSpeedMin = 0.05

	// ParticleSpeedMax 粒子初速度上限（像素/毫秒）
	ParticleSpeedMax = 0.18

	// ParticleRadiusMin 粒子半径下限（像素）
	ParticleRadiusMin = 1.5

	// ParticleRadiusMax 粒子半径上限（像素）
	ParticleRadiusMax = 4.0

	// ParticleGravity 下坠项系数（像素/毫秒²）
	// 每帧额外位移 = ParticleGravity * 粒子总年龄，
	// 产生持续增强的"重力感"而非物理精确的积分
	ParticleGravity = 0.00035
)
