package components

// ClickableComponent 标记实体可以被指针按下命中
// 定义了以实体位置为中心的可点击区域尺寸和是否启用
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被按下(拖拽会话进行中仍保持启用)
	IsHovered bool    // 指针当前是否悬停在可点击区域内(用于光标反馈)
}
