package components

// SparkComponent 火花标记（可拖拽的路径约束点）
// ArcLength 是火花在引线上的一维坐标，是标记渲染位置和
// 已燃烧轨迹几何的唯一事实来源；只允许 SparkSystem 修改
type SparkComponent struct {
	ArcLength float64 // 当前弧长位置，始终满足 0 <= ArcLength <= 路径总长
	Radius    float64 // 渲染半径（像素）
	Dragging  bool    // 是否处于拖拽会话中
}
