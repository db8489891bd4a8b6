package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/railspark/pkg/app"
	"github.com/decker502/railspark/pkg/config"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	scenePath := flag.String("scene", "", "场景配置文件路径（默认使用内嵌场景）")
	flag.Parse()

	defaultScene, err := assetsFS.ReadFile("assets/config/scene.yaml")
	if err != nil {
		log.Fatalf("内嵌场景配置缺失: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ScenePath:    *scenePath,
		DefaultScene: defaultScene,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.DesignWidth, config.DesignHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("引线火花")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
