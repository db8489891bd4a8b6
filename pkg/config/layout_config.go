package config

// 布局配置常量
// 本文件定义了场景的设计尺寸和路径几何相关参数
// 所有设计坐标以 DesignWidth x DesignHeight 的设计面为基准，
// 渲染时通过 utils.Transform 等比映射到当前窗口

const (
	// DesignWidth 设计面宽度（设计坐标单位）
	DesignWidth = 800.0

	// DesignHeight 设计面高度（设计坐标单位）
	DesignHeight = 600.0

	// SampleStep 路径采样步长（显示坐标单位）
	// 每 4 个单位记录一个采样点，吸附误差小于半个火花半径
	SampleStep = 4.0

	// TrailStep 已燃轨迹重采样步长（显示坐标单位）
	// 比 SampleStep 粗，轨迹只用于描边渲染，末端顶点会强制
	// 对齐精确的火花位置，不受步长取整影响
	TrailStep = 10.0

	// FuseWidth 引线描边宽度（像素）
	FuseWidth = 3.0

	// TrailWidth 已燃轨迹描边宽度（像素），比引线略粗以完全覆盖
	TrailWidth = 5.0

	// SparkHitPadding 火花可点击区域在渲染半径外的扩展（像素）
	// 让拖拽起手更容易命中
	SparkHitPadding = 6.0
)
