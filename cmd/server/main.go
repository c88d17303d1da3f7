package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZydFirst/doudizhu/internal/config"
	"github.com/ZydFirst/doudizhu/internal/engine"
	"github.com/ZydFirst/doudizhu/internal/game/registry"
	"github.com/ZydFirst/doudizhu/internal/gateway"
	"github.com/ZydFirst/doudizhu/internal/logger"
	"github.com/ZydFirst/doudizhu/internal/storage"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	if err := logger.Init(); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	// Redis 不可用时排行榜降级关闭，游戏本身不受影响
	var leaderboard engine.Leaderboard
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis 连接失败，排行榜功能关闭: %v", err)
		_ = client.Close()
	} else {
		leaderboard = storage.NewLeaderboardManager(client)
	}
	cancel()

	reg := registry.New(cfg.Game.RoomTimeoutDuration())
	eng := engine.New(reg, leaderboard)
	srv := gateway.NewServer(cfg, eng)

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("正在关闭服务器...")
		srv.Shutdown()
		os.Exit(0)
	}()

	log.Println("🎮 斗地主服务器启动中...")
	if err := srv.Start(); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
