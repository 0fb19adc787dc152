package enum

import (
	"strings"
	"testing"
)

// TestReplyPoolSizes 单元测试，用于确保各随机回复池的条数与应答器的
// 可观测契约保持一致(问候3条、报价追问2条、知识库跟进3条)。
// 这可以防止因增删话术而悄悄改变对外行为。
func TestReplyPoolSizes(t *testing.T) {
	if len(GreetingReplies) != 3 {
		t.Errorf("GreetingReplies应包含3条话术, 实际为 %d", len(GreetingReplies))
	}
	if len(PricingFollowups) != 2 {
		t.Errorf("PricingFollowups应包含2条话术, 实际为 %d", len(PricingFollowups))
	}
	if len(KbFollowups) != 3 {
		t.Errorf("KbFollowups应包含3条话术, 实际为 %d", len(KbFollowups))
	}
}

// TestReplyFormats 检查带占位符的话术模板的占位符个数
func TestReplyFormats(t *testing.T) {
	formats := map[string]struct {
		text  Reply
		count int
	}{
		"ReplyQuickPlanFormat":  {ReplyQuickPlanFormat, 1},
		"ReplyScheduleFormat":   {ReplyScheduleFormat, 1},
		"ReplyCostVolumeFormat": {ReplyCostVolumeFormat, 1},
		"ReplyProjectAckFormat": {ReplyProjectAckFormat, 3},
	}

	for name, f := range formats {
		if got := strings.Count(string(f.text), "%s"); got != f.count {
			t.Errorf("%s应包含 %d 个%%s占位符, 实际为 %d", name, f.count, got)
		}
	}
}

// TestReplyNoEmpty 所有固定话术都不应为空
func TestReplyNoEmpty(t *testing.T) {
	fixed := []Reply{
		ReplyHowAreYou,
		ReplyTimeline,
		ReplyDomain,
		ReplyFallbackPrompt,
		ReplyMsgDefault,
	}
	for i, r := range fixed {
		if strings.TrimSpace(string(r)) == "" {
			t.Errorf("固定话术 #%d 不应为空", i)
		}
	}
	for _, pool := range [][]Reply{GreetingReplies, PricingFollowups, KbFollowups} {
		for i, r := range pool {
			if strings.TrimSpace(string(r)) == "" {
				t.Errorf("回复池话术 #%d 不应为空", i)
			}
		}
	}
}
