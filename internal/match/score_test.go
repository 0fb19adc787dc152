package match

import "testing"

func newTestEntry(title, question, answer string, keywords ...string) Entry {
	return NewEntry(title, question, answer, nil, keywords, nil)
}

// TestScoreEntry 打分是对查询词元序列求和, 重复词元重复计分
func TestScoreEntry(t *testing.T) {
	entry := newTestEntry("Refund Policy", "what is your refund policy", "Refunds are processed within 5 days.", "refund", "money")

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"部分重叠", "refund policy please", 2},
		{"重复词元重复计分", "refund refund refund", 3},
		{"无重叠", "tell me a joke", 0},
		{"空查询", "", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ScoreEntry(Normalize(c.query), &entry); got != c.want {
				t.Errorf("ScoreEntry(%q) = %d, 期望 %d", c.query, got, c.want)
			}
		})
	}
}

// TestScoreEntryEmptySet 无可匹配词元的条目恒为0分
func TestScoreEntryEmptySet(t *testing.T) {
	entry := NewEntry("", "", "orphan answer", nil, nil, nil)
	if entry.Matchable() {
		t.Fatal("空条目不应可匹配")
	}
	if got := ScoreEntry([]string{"orphan", "answer"}, &entry); got != 0 {
		t.Errorf("空词元集合的条目得分应为0, 实际为 %d", got)
	}
}

// TestBestMatch 平手时先出现的条目获胜; 全0分时返回nil
func TestBestMatch(t *testing.T) {
	entries := []Entry{
		newTestEntry("First", "alpha beta", "answer one"),
		newTestEntry("Second", "alpha beta", "answer two"),
		newTestEntry("Third", "alpha beta gamma", "answer three"),
	}

	best, score := BestMatch(Normalize("alpha beta"), entries)
	if best == nil || best.Title != "First" {
		t.Fatalf("同分时应返回先出现的条目, 实际为 %+v", best)
	}
	if score != 2 {
		t.Errorf("得分应为2, 实际为 %d", score)
	}

	best, score = BestMatch(Normalize("alpha beta gamma"), entries)
	if best == nil || best.Title != "Third" {
		t.Fatalf("严格更高分应胜出, 实际为 %+v", best)
	}
	if score != 3 {
		t.Errorf("得分应为3, 实际为 %d", score)
	}

	best, score = BestMatch(Normalize("nothing matches here"), entries)
	if best != nil || score != 0 {
		t.Errorf("全0分时应返回nil, 实际为 %+v, %d", best, score)
	}
}
