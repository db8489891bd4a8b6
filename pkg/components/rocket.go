package components

// RocketComponent 固定目标（火箭）
// 几何尺寸在每次碰撞检测时从组件现场读取，不做缓存，
// 因此后续对位置或尺寸的调整无需额外通知碰撞系统
type RocketComponent struct {
	HalfWidth  float64 // 包围盒半宽（像素），0 表示几何缺失
	HalfHeight float64 // 包围盒半高（像素），0 表示几何缺失

	// Reached 火花是否已接近目标，每次火花移动后全量重算，
	// 不粘滞：火花移开后会翻回 false
	Reached bool

	// Highlighted 接近高亮的呈现状态，与 Reached 同步切换，
	// 点火序列开始时立即清除（避免高亮和淡出动画同时存在）
	Highlighted bool

	// Igniting 点火序列是否已经开始；序列期间接近检测不再
	// 重新点亮高亮
	Igniting bool

	// Visible 目标是否仍然可见；点火序列结束后置为 false，
	// 此后目标不再参与碰撞检测
	Visible bool

	// Alpha 当前不透明度（0-1），淡出阶段由 EffectSystem 驱动
	Alpha float64
}
