package components

// PositionComponent 实体在显示坐标系中的位置
// 约定 X 向右增大，Y 向下增大（与渲染表面一致）
type PositionComponent struct {
	X float64
	Y float64
}
