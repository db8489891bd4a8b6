package components

// BeamComponent 点火光束（火花位置 -> 目标中心）
// 三阶段视觉：全强度 -> +120ms 减弱 -> +420ms 完全透明并销毁，
// 时间均相对点火时刻，由 EffectSystem 按帧推进
type BeamComponent struct {
	X1, Y1 float64 // 起点（点火时的火花位置）
	X2, Y2 float64 // 终点（目标中心）
	AgeMs  float64 // 自点火起经过的毫秒数
	Alpha  float64 // 当前不透明度（0-1）
}
