package card

import (
	"fmt"
	"sort"
)

const (
	DeckSize  = 54 // 一副牌的张数
	SeatCount = 3  // 斗地主固定三人
	HandSize  = 17 // 每位玩家的手牌数
	KittySize = 3  // 底牌张数
)

// Deal 把一副完整的牌按座位切分：每人 17 张，剩余 3 张为底牌。
// 各家手牌按牌序升序排好，便于稳定展示。
// 牌数不是 54 属于编程错误，直接 panic。
func Deal(d Deck) (hands [SeatCount][]Card, kitty []Card) {
	if len(d) != DeckSize {
		panic(fmt.Sprintf("card: 发牌时牌数异常: %d", len(d)))
	}

	for i := range SeatCount {
		hand := make([]Card, HandSize)
		copy(hand, d[i*HandSize:(i+1)*HandSize])
		Sort(hand)
		hands[i] = hand
	}

	kitty = make([]Card, KittySize)
	copy(kitty, d[SeatCount*HandSize:])
	Sort(kitty)
	return hands, kitty
}

// Sort 按点数升序排列，同点数按花色排，保证展示稳定
func Sort(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Rank != cards[j].Rank {
			return cards[i].Rank < cards[j].Rank
		}
		return cards[i].Suit < cards[j].Suit
	})
}

// Remove 从手牌中移除指定的牌，返回剩余手牌。
// 任何一张牌不在手中则返回 false，手牌不变。
func Remove(hand, toRemove []Card) ([]Card, bool) {
	remaining := make([]Card, len(hand))
	copy(remaining, hand)

	for _, c := range toRemove {
		found := false
		for i, h := range remaining {
			if h.Suit == c.Suit && h.Rank == c.Rank {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return hand, false
		}
	}
	return remaining, true
}
