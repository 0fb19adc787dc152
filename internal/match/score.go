package match

// ScoreEntry 计算查询词元序列对条目词元集合的重叠得分。
// 逐个查询词元计数, 重复词元重复计分(是对序列求和, 不是对去重集合)。
// 不做条目长度归一化, 刻意保持线性词袋重叠。
func ScoreEntry(queryTokens []string, e *Entry) int {
	if len(e.tokenSet) == 0 {
		return 0
	}

	score := 0
	for _, t := range queryTokens {
		if _, ok := e.tokenSet[t]; ok {
			score++
		}
	}
	return score
}

// BestMatch 按存储顺序遍历条目, 返回得分严格最高的条目及其得分。
// 平手时先出现的条目获胜(严格大于比较, 后来的同分不替换)。
// 无条目或全部得0分时返回 nil, 0。
func BestMatch(queryTokens []string, entries []Entry) (*Entry, int) {
	var best *Entry
	bestScore := 0

	for i := range entries {
		if s := ScoreEntry(queryTokens, &entries[i]); s > bestScore {
			best = &entries[i]
			bestScore = s
		}
	}
	return best, bestScore
}
