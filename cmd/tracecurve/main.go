// tracecurve 打印场景引线的采样表（无头调参工具）
//
// 用法：
//
//	go run ./cmd/tracecurve -scene assets/config/scene.yaml -step 4
//
// 输出每个采样点的弧长和显示坐标，用于核对引线形状和吸附密度。
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/decker502/railspark/internal/curve"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/game"
)

func main() {
	scenePath := flag.String("scene", "assets/config/scene.yaml", "场景配置文件路径")
	step := flag.Float64("step", config.SampleStep, "采样步长（像素）")
	flag.Parse()

	scene, err := config.LoadSceneConfig(*scenePath)
	if err != nil {
		log.Fatalf("场景配置加载失败: %v", err)
	}

	session := game.NewSession(scene)
	state := curve.Rebuild(session.Path(), *step)

	fmt.Printf("引线总长: %.2f 像素, 采样 %d 点 (步长 %.1f)\n",
		state.TotalLength, len(state.Samples), *step)
	fmt.Printf("%8s %10s %10s\n", "弧长", "x", "y")
	for _, s := range state.Samples {
		fmt.Printf("%8.1f %10.2f %10.2f\n", s.ArcLength, s.X, s.Y)
	}
}
