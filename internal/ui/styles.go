package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZydFirst/doudizhu/internal/game/card"
	"github.com/ZydFirst/doudizhu/internal/protocol"
)

// 角色图标
const (
	LandlordIcon = "👑"
	FarmerIcon   = "🧑‍🌾"
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	systemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().MarginTop(1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderCards 按红黑着色展示一组牌
func renderCards(cards []protocol.CardInfo) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		if isRed(c) {
			parts = append(parts, redStyle.Render(c.Display))
		} else {
			parts = append(parts, blackStyle.Render(c.Display))
		}
	}
	return strings.Join(parts, " ")
}

func isRed(c protocol.CardInfo) bool {
	switch card.Suit(c.Suit) {
	case card.Heart, card.Diamond:
		return true
	case card.Joker:
		return card.Rank(c.Rank) == card.RankRedJoker
	}
	return false
}
