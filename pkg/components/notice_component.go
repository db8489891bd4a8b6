package components

// NoticeComponent 短暂的用户提示文本（如"还没有到达目标"）
// 倒计时结束后由 NoticeSystem 自动销毁实体
type NoticeComponent struct {
	Text        string  // 提示内容
	RemainingMs float64 // 剩余显示时间（毫秒）
}
