package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ZydFirst/doudizhu/internal/logger"
	"github.com/ZydFirst/doudizhu/internal/netclient"
	"github.com/ZydFirst/doudizhu/internal/sound"
	"github.com/ZydFirst/doudizhu/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:1780", "服务器地址")
	room := flag.String("room", "大厅", "房间名")
	name := flag.String("name", "", "昵称，默认取系统用户名")
	flag.Parse()

	if *name == "" {
		if u, err := user.Current(); err == nil {
			*name = u.Username
		}
	}

	if err := logger.Init(); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	serverURL := fmt.Sprintf("ws://%s/ws", *serverAddr)
	client := netclient.New(serverURL, *room, *name)
	if err := client.Connect(); err != nil {
		log.Fatalf("连接服务器失败: %v", err)
	}

	sounds := sound.NewManager()
	if err := sounds.Init(); err != nil {
		log.Printf("音效初始化失败: %v", err)
	}
	defer sounds.Close()

	model := ui.NewModel(client, sounds, *room)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
