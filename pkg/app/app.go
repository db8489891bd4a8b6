// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/entities"
	"github.com/decker502/railspark/pkg/game"
	"github.com/decker502/railspark/pkg/systems"
)

// tickMillis 每个逻辑 tick 对应的毫秒数（ebiten 默认 60 TPS）
const tickMillis = 1000.0 / 60.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ScenePath 指定场景配置文件路径，为空则使用内嵌默认场景
	ScenePath string
	// DefaultScene 内嵌默认场景配置（YAML 字节），由 main 包注入
	DefaultScene []byte
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	session      *game.Session
	audioManager *game.AudioManager

	inputSystem    *systems.InputSystem
	sparkSystem    *systems.SparkSystem
	effectSystem   *systems.EffectSystem
	particleSystem *systems.ParticleSystem
	noticeSystem   *systems.NoticeSystem
	renderSystem   *systems.RenderSystem

	// Layout 报告的表面尺寸与已应用到几何的尺寸
	surfaceW, surfaceH int
	appliedW, appliedH int
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载场景配置
	var scene *config.SceneConfig
	var err error
	if cfg.ScenePath != "" {
		scene, err = config.LoadSceneConfig(cfg.ScenePath)
		if err != nil {
			return nil, fmt.Errorf("场景配置加载失败: %w", err)
		}
		log.Printf("[App] 加载场景配置: %s", cfg.ScenePath)
	} else {
		scene, err = config.ParseSceneConfig(cfg.DefaultScene)
		if err != nil {
			return nil, fmt.Errorf("内嵌场景配置解析失败: %w", err)
		}
		log.Printf("[App] 使用内嵌默认场景")
	}

	// 初始化音频
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext)
	log.Printf("[App] AudioManager initialized")

	// 创建会话并装配核心实体
	session := game.NewSession(scene)
	start := session.Path().PointAt(0)
	session.SparkID = entities.NewSparkEntity(session.EntityManager,
		start.X, start.Y, scene.Spark.Radius)
	session.RocketID = entities.NewRocketEntity(session.EntityManager, 0, 0,
		scene.Rocket.Width/2, scene.Rocket.Height/2)
	session.RebuildGeometry(config.DesignWidth, config.DesignHeight)

	// 创建系统
	collisionSystem := systems.NewCollisionSystem(session.EntityManager, session)
	sparkSystem := systems.NewSparkSystem(session.EntityManager, session, collisionSystem)
	effectSystem := systems.NewEffectSystem(session.EntityManager, session, audioManager)
	inputSystem := systems.NewInputSystem(session.EntityManager, session,
		sparkSystem, effectSystem, nil)

	app := &App{
		session:        session,
		audioManager:   audioManager,
		inputSystem:    inputSystem,
		sparkSystem:    sparkSystem,
		effectSystem:   effectSystem,
		particleSystem: systems.NewParticleSystem(session.EntityManager),
		noticeSystem:   systems.NewNoticeSystem(session.EntityManager),
		renderSystem:   systems.NewRenderSystem(session.EntityManager, session),
		surfaceW:       config.DesignWidth,
		surfaceH:       config.DesignHeight,
		appliedW:       config.DesignWidth,
		appliedH:       config.DesignHeight,
	}

	// 火花落位到引线起点（同时完成首次接近检测）
	sparkSystem.SetPosition(0)

	log.Printf("[App] 初始化完成: 路径总长 %.1f", session.Path().Length())
	return app, nil
}

// Update 推进一个逻辑 tick
func (a *App) Update() error {
	// Layout 报告的尺寸变化在逻辑帧开头统一应用
	if a.surfaceW != a.appliedW || a.surfaceH != a.appliedH {
		a.appliedW = a.surfaceW
		a.appliedH = a.surfaceH
		a.sparkSystem.HandleResize(float64(a.appliedW), float64(a.appliedH))
	}

	a.inputSystem.Update()
	a.effectSystem.Update(tickMillis)
	a.particleSystem.Update()
	a.noticeSystem.Update(tickMillis)

	a.session.EntityManager.RemoveMarkedEntities()
	return nil
}

// Draw 绘制一帧
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 18, B: 26, A: 255})
	a.renderSystem.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 直接采用窗口尺寸：显示坐标与窗口像素一一对应，窗口缩放时
// 由 SparkSystem 重建几何而不是靠 ebiten 拉伸画面
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.surfaceW = outsideWidth
		a.surfaceH = outsideHeight
	}
	return a.surfaceW, a.surfaceH
}
