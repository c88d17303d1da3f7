package rule

import (
	"fmt"
	"slices"

	"github.com/ZydFirst/doudizhu/internal/game/card"
)

// HandType 定义牌型
type HandType int

const (
	Invalid        HandType = iota
	Single                  // 单张
	Pair                    // 对子
	Trio                    // 三张不带
	TrioWithSingle          // 三带一
	TrioWithPair            // 三带二
	Straight                // 顺子（5张或以上连续单张）
	PairStraight            // 连对（3对或以上）
	Plane                   // 飞机不带翅膀（2个或以上连续三张）
	Bomb                    // 炸弹（四张相同）
	Rocket                  // 火箭（双王）
)

// handTypeNames 牌型名称映射表
var handTypeNames = map[HandType]string{
	Single:         "单张",
	Pair:           "对子",
	Trio:           "三张",
	TrioWithSingle: "三带一",
	TrioWithPair:   "三带二",
	Straight:       "顺子",
	PairStraight:   "连对",
	Plane:          "飞机",
	Bomb:           "炸弹",
	Rocket:         "火箭",
}

func (h HandType) String() string {
	if name, ok := handTypeNames[h]; ok {
		return name
	}
	return "无效"
}

// ParsedHand 解析后的一手牌，用于比较
type ParsedHand struct {
	Type    HandType
	KeyRank card.Rank   // 决定大小的关键牌点数 (例如 3334 中的 3, 或 34567 中的 3)
	Length  int         // 牌型长度，主要用于顺子、连对、飞机的展示
	Cards   []card.Card // 这手牌包含的卡牌
}

func (p ParsedHand) IsEmpty() bool {
	return p.Type == Invalid
}

// handAnalysis 一手牌的预分析：各点数出现的次数及去重后的点数序列
type handAnalysis struct {
	counts map[card.Rank]int
	ranks  []card.Rank // 去重后升序
}

// analyzeCards 统计各点数的数量
func analyzeCards(cards []card.Card) handAnalysis {
	analysis := handAnalysis{counts: make(map[card.Rank]int)}
	for _, c := range cards {
		analysis.counts[c.Rank]++
	}
	for r := range analysis.counts {
		analysis.ranks = append(analysis.ranks, r)
	}
	slices.Sort(analysis.ranks)
	return analysis
}

// isContinuous 检查点数是否连续，顺子、连对、飞机不能包含 2 和大小王
func isContinuous(ranks []card.Rank) bool {
	if len(ranks) == 0 {
		return false
	}
	for i, r := range ranks {
		if r >= card.Rank2 {
			return false
		}
		if i > 0 && ranks[i-1]+1 != r {
			return false
		}
	}
	return true
}

// checker 牌型检查函数：匹配则返回解析结果
type checker func(handAnalysis, []card.Card) (ParsedHand, bool)

// ParseHand 解析牌型。带翅膀的飞机不在支持范围内，会被判为无效。
func ParseHand(cards []card.Card) (ParsedHand, error) {
	if len(cards) == 0 {
		return ParsedHand{}, fmt.Errorf("不能出空牌")
	}

	analysis := analyzeCards(cards)

	// 按优先级检查各种牌型
	checks := []checker{
		isRocket,
		isBomb,
		isSimpleType, // 单张、对子、三张
		isTrioWithKickers,
		isStraight,
		isPairStraight,
		isPlane,
	}

	for _, check := range checks {
		if hand, ok := check(analysis, cards); ok {
			return hand, nil
		}
	}

	return ParsedHand{}, fmt.Errorf("不支持的牌型: %s", card.Format(cards))
}

// isRocket 火箭：恰好大小王各一张
func isRocket(a handAnalysis, cards []card.Card) (ParsedHand, bool) {
	if len(cards) == 2 && a.counts[card.RankBlackJoker] == 1 && a.counts[card.RankRedJoker] == 1 {
		return ParsedHand{Type: Rocket, Cards: cards}, true
	}
	return ParsedHand{}, false
}

// isBomb 炸弹：四张相同点数
func isBomb(a handAnalysis, cards []card.Card) (ParsedHand, bool) {
	if len(cards) == 4 && len(a.ranks) == 1 {
		return ParsedHand{Type: Bomb, KeyRank: a.ranks[0], Cards: cards}, true
	}
	return ParsedHand{}, false
}

// isSimpleType 单张、对子、三张
func isSimpleType(a handAnalysis, cards []card.Card) (ParsedHand, bool) {
	if len(a.ranks) != 1 {
		return ParsedHand{}, false
	}
	types := map[int]HandType{1: Single, 2: Pair, 3: Trio}
	if t, ok := types[len(cards)]; ok {
		return ParsedHand{Type: t, KeyRank: a.ranks[0], Cards: cards}, true
	}
	return ParsedHand{}, false
}

// isTrioWithKickers 三带一（4张）和三带二（5张）
func isTrioWithKickers(a handAnalysis, cards []card.Card) (ParsedHand, bool) {
	if len(a.ranks) != 2 {
		return ParsedHand{}, false
	}
	var trioRank card.Rank
	found := false
	for r, count := range a.counts {
		if count == 3 {
			trioRank = r
			found = true
		}
	}
	if !found {
		return ParsedHand{}, false
	}
	switch len(cards) {
	case 4:
		return ParsedHand{Type: TrioWithSingle, KeyRank: trioRank, Cards: cards}, true
	case 5:
		return ParsedHand{Type: TrioWithPair, KeyRank: trioRank, Cards: cards}, true
	}
	return ParsedHand{}, false
}

// isStraight 顺子：5 张或以上的连续单张
func isStraight(a handAnalysis, cards []card.Card) (ParsedHand, bool) {
	if len(cards) < 5 || len(a.ranks) != len(cards) {
		return ParsedHand{}, false
	}
	if !isContinuous(a.ranks) {
		return ParsedHand{}, false
	}
	return ParsedHand{Type: Straight, KeyRank: a.ranks[0], Length: len(cards), Cards: cards}, true
}

// isPairStraight 连对：3 对或以上的连续对子
func isPairStraight(a handAnalysis, cards []card.Card) (ParsedHand, bool) {
	if len(cards) < 6 || len(cards)%2 != 0 || len(a.ranks) != len(cards)/2 {
		return ParsedHand{}, false
	}
	for _, count := range a.counts {
		if count != 2 {
			return ParsedHand{}, false
		}
	}
	if !isContinuous(a.ranks) {
		return ParsedHand{}, false
	}
	return ParsedHand{Type: PairStraight, KeyRank: a.ranks[0], Length: len(a.ranks), Cards: cards}, true
}

// isPlane 飞机不带翅膀：2 个或以上的连续三张。
// 带了单牌或对子的飞机不符合本引擎的规则，按无效处理。
func isPlane(a handAnalysis, cards []card.Card) (ParsedHand, bool) {
	if len(cards) < 6 || len(cards)%3 != 0 || len(a.ranks) != len(cards)/3 {
		return ParsedHand{}, false
	}
	for _, count := range a.counts {
		if count != 3 {
			return ParsedHand{}, false
		}
	}
	if !isContinuous(a.ranks) {
		return ParsedHand{}, false
	}
	return ParsedHand{Type: Plane, KeyRank: a.ranks[0], Length: len(a.ranks), Cards: cards}, true
}
