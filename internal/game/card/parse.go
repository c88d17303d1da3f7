package card

import (
	"fmt"
	"strings"
)

// 大小王的文本标记，区分大小写
const (
	TokenBlackJoker = "joker"
	TokenRedJoker   = "JOKER"
)

// symbolSuits 花色符号反查表
var symbolSuits = map[string]Suit{
	"♠": Spade,
	"♥": Heart,
	"♣": Club,
	"♦": Diamond,
}

// nameRanks 牌面值反查表
var nameRanks = map[string]Rank{
	"3": Rank3, "4": Rank4, "5": Rank5, "6": Rank6,
	"7": Rank7, "8": Rank8, "9": Rank9, "10": Rank10,
	"J": RankJ, "Q": RankQ, "K": RankK, "A": RankA, "2": Rank2,
}

// ParseToken 解析单个牌面标记（如 ♠3、♥10、joker、JOKER）
func ParseToken(token string) (Card, error) {
	switch token {
	case TokenBlackJoker:
		return Card{Suit: Joker, Rank: RankBlackJoker, Color: Black}, nil
	case TokenRedJoker:
		return Card{Suit: Joker, Rank: RankRedJoker, Color: Red}, nil
	}

	for symbol, suit := range symbolSuits {
		if rest, ok := strings.CutPrefix(token, symbol); ok {
			rank, ok := nameRanks[rest]
			if !ok {
				return Card{}, fmt.Errorf("无法识别的点数: %q", rest)
			}
			color := Black
			if suit == Heart || suit == Diamond {
				color = Red
			}
			return Card{Suit: suit, Rank: rank, Color: color}, nil
		}
	}
	return Card{}, fmt.Errorf("无法识别的牌: %q", token)
}

// ParseTokens 解析一组牌面标记
func ParseTokens(tokens []string) ([]Card, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("没有指定任何牌")
	}
	cards := make([]Card, 0, len(tokens))
	for _, token := range tokens {
		c, err := ParseToken(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Format 将一组牌格式化为空格分隔的标记串
func Format(cards []Card) string {
	if len(cards) == 0 {
		return "无"
	}
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
