package config

// 点火效果序列的时序配置
// 所有时间均为毫秒，相对点火时刻（EffectSystem 进入 Firing 的瞬间）

const (
	// ReachFactor 接近判定阈值系数
	// 阈值 = ReachFactor * max(目标宽度, 目标高度)
	ReachFactor = 0.8

	// BeamDimMillis 光束从全强度降为弱强度的时刻
	BeamDimMillis = 120.0

	// BeamEndMillis 光束完全透明并销毁的时刻
	BeamEndMillis = 420.0

	// BeamDimAlpha 光束弱强度阶段的起始不透明度
	BeamDimAlpha = 0.45

	// BeamWidth 光束描边宽度（像素）
	BeamWidth = 3.0

	// FadeDelayMillis 目标开始淡出的时刻
	FadeDelayMillis = 200.0

	// FadeDurationMillis 目标淡出动画时长
	FadeDurationMillis = 700.0

	// RemoveBufferMillis 淡出结束后到目标标记不可见的缓冲
	RemoveBufferMillis = 20.0

	// NoticeDurationMillis 拒绝提示的自动消失时长
	NoticeDurationMillis = 1600.0

	// NoticeNotReached 未到达目标时点火的提示文案
	NoticeNotReached = "还没有到达目标"
)
