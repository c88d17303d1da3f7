package rule

// CanBeat 判断 newHand 是否能大过 lastHand
func CanBeat(newHand, lastHand ParsedHand) bool {
	// 火箭最大
	if newHand.Type == Rocket {
		return true
	}
	if lastHand.Type == Rocket {
		return false
	}

	// 炸弹可以大过任何非炸弹的牌；炸弹对炸弹比点数
	if newHand.Type == Bomb && lastHand.Type != Bomb {
		return true
	}

	// 其余情况牌型必须相同，按关键牌点数比较
	if newHand.Type != lastHand.Type {
		return false
	}
	return newHand.KeyRank > lastHand.KeyRank
}
