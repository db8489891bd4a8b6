//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录 assets/ 复制到此目录（go:embed 不能跨包目录）。
package mobile

import "embed"

//go:embed assets/config/scene.yaml
var assetsFS embed.FS
