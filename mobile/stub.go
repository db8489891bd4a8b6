//go:build !mobile

// 非移动端构建的占位实现
//
// 真正的绑定入口在 mobile.go / embed.go 里，只随 -tags mobile 编译；
// 这里提供同名的空 Dummy，让桌面端构建也能引用本包而不用条件编译。
package mobile

// Dummy 空导出函数，保证包在任何构建标签组合下都有导出符号
func Dummy() {}
