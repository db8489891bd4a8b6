package components

// ParticleComponent represents one unit of a particle burst.
//
// Position lives in a separate PositionComponent. Velocities are in pixels
// per millisecond; the integrator advances a fixed 16 ms frame per tick and
// adds a downward term scaled by the particle's total age (not the frame
// delta, see ParticleSystem).
type ParticleComponent struct {
	VelocityX float64 // 水平速度（像素/毫秒）
	VelocityY float64 // 垂直速度（像素/毫秒）

	AgeMs      float64 // 已存在时间（毫秒）
	LifetimeMs float64 // 生命周期上限（毫秒），与所属 burst 相同

	Radius float64 // 渲染半径（像素）

	// Alpha 不透明度，每帧由年龄重新计算：max(0, 1 - age/lifetime)
	// 重算而非递减，因此对帧率抖动不敏感
	Alpha float64
}
