// Package ui 是聊天式终端客户端：上方滚动显示对局消息，
// 底部输入框发送指令（斗地主、叫分 2、出牌 ♠3 等）。
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ZydFirst/doudizhu/internal/netclient"
	"github.com/ZydFirst/doudizhu/internal/protocol"
	"github.com/ZydFirst/doudizhu/internal/sound"
)

// 最多保留的历史行数，超过后丢弃最旧的
const maxHistory = 200

// serverMsg 包装一条来自服务器的消息
type serverMsg struct {
	msg *protocol.Message
}

// connClosedMsg 连接断开
type connClosedMsg struct {
	err error
}

// Model 聊天客户端模型
type Model struct {
	client *netclient.Client
	sounds *sound.Manager

	room     string
	playerID string
	lines    []string
	input    textinput.Model
	width    int
	height   int
	quitting bool
}

func NewModel(client *netclient.Client, sounds *sound.Manager, room string) Model {
	input := textinput.New()
	input.Placeholder = "输入 斗地主帮助 查看指令"
	input.CharLimit = 128
	input.Focus()

	return Model{
		client: client,
		sounds: sounds,
		room:   room,
		input:  input,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listen())
}

// listen 等待下一条服务器消息
func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.client.Receive
		if !ok {
			return connClosedMsg{}
		}
		return serverMsg{msg: msg}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.client.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.client.SendCommand(text)
				m.appendLine(systemStyle.Render("> " + text))
				m.input.Reset()
			}
			return m, nil
		}

	case serverMsg:
		m.handleServer(msg.msg)
		return m, m.listen()

	case connClosedMsg:
		if msg.err != nil {
			m.appendLine(errorStyle.Render(fmt.Sprintf("❌ 连接断开: %v", msg.err)))
		} else {
			m.appendLine(systemStyle.Render("连接已关闭"))
		}
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxHistory {
		m.lines = m.lines[len(m.lines)-maxHistory:]
	}
}

func (m Model) View() string {
	if m.quitting {
		return "再见！👋\n"
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("🃏 斗地主 · 房间 %s", m.room)))
	sb.WriteString("\n\n")

	visible := m.lines
	if limit := m.height - 6; limit > 0 && len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	for _, line := range visible {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(promptStyle.Render(m.input.View()))
	sb.WriteString("\n")
	sb.WriteString(systemStyle.Render("Enter 发送 · Esc 退出"))
	return docStyle.Render(sb.String())
}
