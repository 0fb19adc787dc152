package user

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"gitee.com/taoJie_1/consult-agent/internal/match"
	"gitee.com/taoJie_1/consult-agent/model/enum"
)

const testBookingUrl = "https://calendly.com"

func newTestResponder(entries []match.Entry) *responderService {
	opts := responderOptions{
		minScore:     2,
		echoWords:    4,
		snippetLimit: 140,
		bookingUrl:   testBookingUrl,
	}
	return newResponder(nil, func() []match.Entry { return entries }, rand.New(rand.NewSource(1)), opts)
}

func testKnowledge() []match.Entry {
	return []match.Entry{
		match.NewEntry(
			"Services",
			"what services do you offer",
			"We design, build and ship web products end to end. That covers discovery and development.",
			[]string{"what do you do"},
			[]string{"services", "consulting"},
			[]string{"general"},
		),
		match.NewEntry(
			"Refund Policy",
			"what is your refund policy",
			"Refunds are processed within 5 days. Contact billing for the paperwork.",
			[]string{"can i get my money back"},
			[]string{"refund", "refunds"},
			[]string{"billing"},
		),
		match.NewEntry("Ping", "ping pong", "", nil, nil, nil),
	}
}

func inPool(pool []enum.Reply, got string) bool {
	for _, r := range pool {
		if string(r) == got {
			return true
		}
	}
	return false
}

// TestGetOfflineReplyEmptyInput 归一化后无词元: 无离线意见
func TestGetOfflineReplyEmptyInput(t *testing.T) {
	s := newTestResponder(testKnowledge())

	for _, input := range []string{"", "   ", "?!..."} {
		if reply, ok := s.GetOfflineReply(input); ok {
			t.Errorf("输入 %q 不应产生离线回复, 实际为 %q", input, reply)
		}
	}
}

// TestGetOfflineReplyGreeting 问候回复从回复池取样
func TestGetOfflineReplyGreeting(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("hello")
	if !ok {
		t.Fatal("问候应产生离线回复")
	}
	if !inPool(enum.GreetingReplies, reply) {
		t.Errorf("问候回复应取自回复池, 实际为 %q", reply)
	}
}

// TestGetOfflineReplyHowAreYou 健康问候优先于其它规则,
// 即使原文里带着时间范围词("today")也不落入时间线分支
func TestGetOfflineReplyHowAreYou(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("how are you doing today")
	if !ok || reply != string(enum.ReplyHowAreYou) {
		t.Errorf("健康问候应返回固定话术, 实际为 %q", reply)
	}
}

// TestGetOfflineReplyPricing 无规模线索的报价问题走追问池
func TestGetOfflineReplyPricing(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("what's your pricing for this")
	if !ok {
		t.Fatal("报价问题应产生离线回复")
	}
	if !inPool(enum.PricingFollowups, reply) {
		t.Errorf("报价回复应取自追问池, 实际为 %q", reply)
	}
}

// TestGetOfflineReplyCostVolume 报价+规模优先于普通报价
func TestGetOfflineReplyCostVolume(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("what would it cost for 5k users")
	if !ok {
		t.Fatal("报价+规模应产生离线回复")
	}
	want := fmt.Sprintf(string(enum.ReplyCostVolumeFormat), "")
	if reply != want {
		t.Errorf("规模感知报价回复不符:\n实际 %q\n期望 %q", reply, want)
	}

	// 再叠加时间范围, 应插入近期子句
	reply, _ = s.GetOfflineReply("quote for 200 users by next month")
	want = fmt.Sprintf(string(enum.ReplyCostVolumeFormat), string(enum.ReplyNearTermClause))
	if reply != want {
		t.Errorf("带时间线的规模感知回复不符:\n实际 %q\n期望 %q", reply, want)
	}
}

// TestGetOfflineReplyOutlinePrecedence outline同时含项目词("plan"),
// 大纲规则在前, 应产生快速计划而非项目确认
func TestGetOfflineReplyOutlinePrecedence(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("can you outline a plan for my app")
	if !ok {
		t.Fatal("大纲请求应产生离线回复")
	}
	want := fmt.Sprintf(string(enum.ReplyQuickPlanFormat), testBookingUrl)
	if reply != want {
		t.Errorf("大纲回复不符:\n实际 %q\n期望 %q", reply, want)
	}
}

// TestGetOfflineReplyTimeframeOnly 词表之外的时间表达同样触发时间线意图
func TestGetOfflineReplyTimeframeOnly(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("we need this live by next week")
	if !ok || reply != string(enum.ReplyTimeline) {
		t.Errorf("时间表达应返回时间线话术, 实际为 %q", reply)
	}
}

// TestGetOfflineReplyDomain 受监管行业的固定提醒
func TestGetOfflineReplyDomain(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("it's for a healthcare startup")
	if !ok || reply != string(enum.ReplyDomain) {
		t.Errorf("受监管行业应返回合规话术, 实际为 %q", reply)
	}
}

// TestGetOfflineReplySchedule 预约意图带预约链接
func TestGetOfflineReplySchedule(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("can we book a call")
	if !ok {
		t.Fatal("预约意图应产生离线回复")
	}
	want := fmt.Sprintf(string(enum.ReplyScheduleFormat), testBookingUrl)
	if reply != want {
		t.Errorf("预约回复不符:\n实际 %q\n期望 %q", reply, want)
	}
}

// TestGetOfflineReplyProjectEcho 项目确认回显归一化后的前几个词
func TestGetOfflineReplyProjectEcho(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("i want to build a saas product")
	if !ok {
		t.Fatal("项目意图应产生离线回复")
	}
	quickPlan := fmt.Sprintf(string(enum.ReplyQuickPlanFormat), testBookingUrl)
	want := fmt.Sprintf(string(enum.ReplyProjectAckFormat), "i want to build", "", quickPlan)
	if reply != want {
		t.Errorf("项目确认回复不符:\n实际 %q\n期望 %q", reply, want)
	}
}

// TestGetOfflineReplyProjectWithTimeframe 项目词+时间表达不落入时间线分支,
// 而是走项目确认并带上"本周"限定词
func TestGetOfflineReplyProjectWithTimeframe(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("launch the app today")
	if !ok {
		t.Fatal("项目意图应产生离线回复")
	}
	if reply == string(enum.ReplyTimeline) {
		t.Fatal("带项目词的时间表达不应返回时间线话术")
	}
	quickPlan := fmt.Sprintf(string(enum.ReplyQuickPlanFormat), testBookingUrl)
	want := fmt.Sprintf(string(enum.ReplyProjectAckFormat), "launch the app today", string(enum.ReplyThisWeekQualifier), quickPlan)
	if reply != want {
		t.Errorf("带时间表达的项目确认回复不符:\n实际 %q\n期望 %q", reply, want)
	}
}

// TestGetOfflineReplyKnowledge 意图全不命中时走知识库打分,
// 回复为 主题 + 答案首句 + 跟进语
func TestGetOfflineReplyKnowledge(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("what is your refund policy")
	if !ok {
		t.Fatal("知识库问题应产生离线回复")
	}

	prefix := "For Refund Policy: Refunds are processed within 5 days. "
	if !strings.HasPrefix(reply, prefix) {
		t.Fatalf("知识库回复前缀不符:\n实际 %q\n期望前缀 %q", reply, prefix)
	}
	if !inPool(enum.KbFollowups, strings.TrimPrefix(reply, prefix)) {
		t.Errorf("知识库回复的跟进语应取自跟进池, 实际为 %q", reply)
	}
}

// TestGetOfflineReplyLowConfidence 低于最低得分阈值时回兜底话术
func TestGetOfflineReplyLowConfidence(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("tell me a joke")
	if !ok || reply != string(enum.ReplyFallbackPrompt) {
		t.Errorf("低置信度应返回兜底话术, 实际为 %q", reply)
	}
}

// TestGetOfflineReplyEmptyAnswer 得分达标但条目无答案正文, 同样回兜底
func TestGetOfflineReplyEmptyAnswer(t *testing.T) {
	s := newTestResponder(testKnowledge())

	reply, ok := s.GetOfflineReply("ping pong")
	if !ok || reply != string(enum.ReplyFallbackPrompt) {
		t.Errorf("无答案条目应返回兜底话术, 实际为 %q", reply)
	}
}

// TestGetOfflineReplySeededRand 相同种子下取样结果可复现
func TestGetOfflineReplySeededRand(t *testing.T) {
	a := newTestResponder(testKnowledge())
	b := newTestResponder(testKnowledge())

	for i := 0; i < 5; i++ {
		ra, _ := a.GetOfflineReply("hello")
		rb, _ := b.GetOfflineReply("hello")
		if ra != rb {
			t.Fatalf("相同种子第%d次取样结果不一致: %q vs %q", i, ra, rb)
		}
	}
}
