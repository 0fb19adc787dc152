package intent

import (
	"testing"

	"gitee.com/taoJie_1/consult-agent/internal/match"
)

// TestIsGreeting 问候词命中与否
func TestIsGreeting(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"hi", true},
		{"Hello there", true},
		{"yo what's up", true},
		{"highly unlikely", false}, // "hi"是整词匹配, 不是前缀
		{"tell me about pricing", false},
	}
	for _, c := range cases {
		if got := IsGreeting(match.Normalize(c.input)); got != c.want {
			t.Errorf("IsGreeting(%q) = %v, 期望 %v", c.input, got, c.want)
		}
	}
}

// TestIsHowAreYou 短语匹配在原文上, 缩写匹配在词元上
func TestIsHowAreYou(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"How are you doing today?", true},
		{"hru", true},
		{"sup", true},
		{"how do you charge", false},
	}
	for _, c := range cases {
		if got := IsHowAreYou(c.input, match.Normalize(c.input)); got != c.want {
			t.Errorf("IsHowAreYou(%q) = %v, 期望 %v", c.input, got, c.want)
		}
	}
}

// TestIsCostIntent 报价与定价词表取并集
func TestIsCostIntent(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"can i get a quote", true},
		{"what are your rates", true},
		{"budget is tight", true},
		{"what's your pricing for this", true},
		{"tell me about your process", false},
	}
	for _, c := range cases {
		if got := IsCostIntent(match.Normalize(c.input)); got != c.want {
			t.Errorf("IsCostIntent(%q) = %v, 期望 %v", c.input, got, c.want)
		}
	}
}

// TestHasTimeframe 整词匹配时间范围表达
func TestHasTimeframe(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"we need this live by next week", true},
		{"in 3 days", true},
		{"deadline is friday", true},
		{"a weekend project", false}, // weekend不含整词week
		{"sometime eventually", false},
	}
	for _, c := range cases {
		if got := HasTimeframe(c.input); got != c.want {
			t.Errorf("HasTimeframe(%q) = %v, 期望 %v", c.input, got, c.want)
		}
	}
}

// TestHasVolume 裸数字或规模用词
func TestHasVolume(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"around 5k users", true},
		{"200 seats", true},
		{"daily active crowd", true},
		{"what's your pricing for this", false},
	}
	for _, c := range cases {
		if got := HasVolume(c.input); got != c.want {
			t.Errorf("HasVolume(%q) = %v, 期望 %v", c.input, got, c.want)
		}
	}
}

// TestRemainingClassifiers 其余词表的抽样校验
func TestRemainingClassifiers(t *testing.T) {
	if !IsProjectIntent(match.Normalize("i want to build a saas app")) {
		t.Error("build/saas/app应命中项目意图")
	}
	if !IsOutlineIntent(match.Normalize("give me an outline")) {
		t.Error("outline应命中大纲意图")
	}
	if !IsTimelineIntent(match.Normalize("what's the timeline")) {
		t.Error("timeline应命中时间线意图")
	}
	if !IsDomainIntent(match.Normalize("it's a healthcare product")) {
		t.Error("healthcare应命中受监管行业意图")
	}
	if !IsScheduleIntent(match.Normalize("can we book a call")) {
		t.Error("book/call应命中预约意图")
	}
	if IsScheduleIntent(match.Normalize("what services do you offer")) {
		t.Error("services不应命中预约意图")
	}
}
