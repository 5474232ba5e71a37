package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/iWorld-y/market_narrative/internal/config"
	"github.com/iWorld-y/market_narrative/internal/logger"
	"github.com/iWorld-y/market_narrative/pkg/engine"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		log.Printf("无法加载配置文件: %v", err)
		return 1
	}

	// 2. 初始化日志
	closeLog, err := logger.InitLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Printf("无法初始化日志: %v", err)
		return 1
	}
	defer closeLog()

	// 3. 验证配置：缺失任何必填项都不做网络请求
	if err := cfg.Validate(); err != nil {
		logger.Log.Errorf("配置错误: %v", err)
		return 1
	}
	logger.Log.Info("启动市场叙事日报...")

	ctx := context.Background()

	e, err := engine.NewEngine(ctx, cfg)
	if err != nil {
		logger.Log.Errorf("初始化失败: %v", err)
		return 1
	}

	// 4. 执行流水线
	err = e.Run(ctx)
	if err != nil {
		var se *engine.StageError
		if errors.As(err, &se) {
			logger.Log.Errorf("流程在 [%s] 阶段终止: %v", se.Stage, se.Err)
		} else {
			logger.Log.Errorf("流程终止: %v", err)
		}
	}
	return engine.ExitCode(err)
}
