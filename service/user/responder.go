package user

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/internal/intent"
	"gitee.com/taoJie_1/consult-agent/internal/match"
	"gitee.com/taoJie_1/consult-agent/model/enum"
)

// ResponderService 离线意图应答器
// 线上助手不可用时的确定性规则应答: 先走意图规则链, 再走知识库打分
type ResponderService interface {
	// GetOfflineReply 对原始消息产生离线回复。
	// ok为false表示"无离线意见", 由调用方转交其它应答源。
	GetOfflineReply(message string) (reply string, ok bool)
}

// offlineQuery 单次调用的查询上下文, 用完即弃
type offlineQuery struct {
	raw    string
	tokens []string
	echo   string
}

// offlineRule 一条(判定, 产出)规则
// 规则按序求值, 首个命中者短路返回; 顺序即优先级, 调整顺序会改变对外行为
type offlineRule struct {
	intent enum.Intent
	match  func(q *offlineQuery) bool
	reply  func(q *offlineQuery) string
}

// responderOptions 应答器的可调参数, 来自配置
type responderOptions struct {
	minScore     int
	echoWords    int
	snippetLimit int
	bookingUrl   string
}

type responderService struct {
	telemetry TelemetryService
	knowledge func() []match.Entry
	opts      responderOptions
	rules     []offlineRule

	// 随机源只用于回复池的取样
	randMu sync.Mutex
	rand   *rand.Rand
}

// NewResponderService 创建离线应答器, 参数取自全局配置
func NewResponderService(telemetry TelemetryService) ResponderService {
	opts := responderOptions{
		minScore:     2,
		echoWords:    4,
		snippetLimit: 140,
		bookingUrl:   "https://calendly.com",
	}
	if global.Config != nil {
		if global.Config.Responder.MinMatchScore > 0 {
			opts.minScore = global.Config.Responder.MinMatchScore
		}
		if global.Config.Responder.EchoWords > 0 {
			opts.echoWords = global.Config.Responder.EchoWords
		}
		if global.Config.Responder.SnippetLimit > 0 {
			opts.snippetLimit = global.Config.Responder.SnippetLimit
		}
		if global.Config.Responder.BookingUrl != "" {
			opts.bookingUrl = global.Config.Responder.BookingUrl
		}
	}

	return newResponder(telemetry, global.Knowledge.Snapshot, rand.New(rand.NewSource(time.Now().UnixNano())), opts)
}

// newResponder 完整注入的构造入口, 测试用固定知识库和随机种子
func newResponder(telemetry TelemetryService, knowledge func() []match.Entry, rnd *rand.Rand, opts responderOptions) *responderService {
	s := &responderService{
		telemetry: telemetry,
		knowledge: knowledge,
		rand:      rnd,
		opts:      opts,
	}

	// 规则链, 自上而下首个命中生效。
	// 注意: "报价+规模"必须排在单独的"报价"之前, 否则永远不可达。
	s.rules = []offlineRule{
		{
			intent: enum.IntentHowAreYou,
			match: func(q *offlineQuery) bool {
				return intent.IsHowAreYou(q.raw, q.tokens)
			},
			reply: func(q *offlineQuery) string {
				return string(enum.ReplyHowAreYou)
			},
		},
		{
			intent: enum.IntentGreeting,
			match: func(q *offlineQuery) bool {
				return intent.IsGreeting(q.tokens)
			},
			reply: func(q *offlineQuery) string {
				return string(s.pick(enum.GreetingReplies))
			},
		},
		{
			intent: enum.IntentOutline,
			match: func(q *offlineQuery) bool {
				return intent.IsOutlineIntent(q.tokens)
			},
			reply: func(q *offlineQuery) string {
				return s.quickPlan()
			},
		},
		{
			intent: enum.IntentCostVolume,
			match: func(q *offlineQuery) bool {
				return intent.IsCostIntent(q.tokens) && intent.HasVolume(q.raw)
			},
			reply: func(q *offlineQuery) string {
				clause := ""
				if intent.HasTimeframe(q.raw) {
					clause = string(enum.ReplyNearTermClause)
				}
				return fmt.Sprintf(string(enum.ReplyCostVolumeFormat), clause)
			},
		},
		{
			intent: enum.IntentCost,
			match: func(q *offlineQuery) bool {
				return intent.IsCostIntent(q.tokens)
			},
			reply: func(q *offlineQuery) string {
				return string(s.pick(enum.PricingFollowups))
			},
		},
		{
			intent: enum.IntentTimeline,
			match: func(q *offlineQuery) bool {
				// 词表之外, 整词时间表达("next week"等)同样触发时间线意图;
				// 但带项目词的消息让行, 由项目规则用"本周"限定词接住时间表达
				if intent.IsTimelineIntent(q.tokens) {
					return true
				}
				return intent.HasTimeframe(q.raw) && !intent.IsProjectIntent(q.tokens)
			},
			reply: func(q *offlineQuery) string {
				return string(enum.ReplyTimeline)
			},
		},
		{
			intent: enum.IntentDomain,
			match: func(q *offlineQuery) bool {
				return intent.IsDomainIntent(q.tokens)
			},
			reply: func(q *offlineQuery) string {
				return string(enum.ReplyDomain)
			},
		},
		{
			intent: enum.IntentSchedule,
			match: func(q *offlineQuery) bool {
				return intent.IsScheduleIntent(q.tokens)
			},
			reply: func(q *offlineQuery) string {
				return fmt.Sprintf(string(enum.ReplyScheduleFormat), s.opts.bookingUrl)
			},
		},
		{
			intent: enum.IntentProject,
			match: func(q *offlineQuery) bool {
				return intent.IsProjectIntent(q.tokens)
			},
			reply: func(q *offlineQuery) string {
				qualifier := ""
				if intent.HasTimeframe(q.raw) {
					qualifier = string(enum.ReplyThisWeekQualifier)
				}
				return fmt.Sprintf(string(enum.ReplyProjectAckFormat), q.echo, qualifier, s.quickPlan())
			},
		},
	}

	return s
}

func (s *responderService) GetOfflineReply(message string) (string, bool) {
	tokens := match.Normalize(message)
	// 归一化后无词元: 无离线意见, 此路径不记遥测
	if len(tokens) == 0 {
		return "", false
	}

	q := &offlineQuery{
		raw:    message,
		tokens: tokens,
		echo:   s.buildEcho(tokens),
	}

	for i := range s.rules {
		rule := &s.rules[i]
		if rule.match(q) {
			reply := rule.reply(q)
			s.record(rule.intent, nil)
			return reply, true
		}
	}

	return s.knowledgeReply(q), true
}

// knowledgeReply 意图规则全部未命中后的知识库打分兜底
func (s *responderService) knowledgeReply(q *offlineQuery) string {
	best, score := match.BestMatch(q.tokens, s.knowledge())

	if best == nil || score < s.opts.minScore {
		s.record(enum.IntentLowConfidence, map[string]interface{}{"score": score})
		return string(enum.ReplyFallbackPrompt)
	}

	// 有得分但没有答案正文的条目, 回兜底话术
	if best.Answer == "" {
		s.record(enum.IntentFallback, map[string]interface{}{"topic": best.Topic(), "score": score})
		return string(enum.ReplyFallbackPrompt)
	}

	snippet := match.TruncateRunes(match.FirstSentence(best.Answer), s.opts.snippetLimit)
	s.record(enum.IntentKbMatch, map[string]interface{}{"topic": best.Topic(), "score": score})

	return fmt.Sprintf("For %s: %s %s", best.Topic(), snippet, s.pick(enum.KbFollowups))
}

// buildEcho 取归一化后前几个词拼成回声片段
func (s *responderService) buildEcho(tokens []string) string {
	n := s.opts.echoWords
	if n > len(tokens) {
		n = len(tokens)
	}
	return strings.Join(tokens[:n], " ")
}

// quickPlan "快速计划"话术, 带预约链接
func (s *responderService) quickPlan() string {
	return fmt.Sprintf(string(enum.ReplyQuickPlanFormat), s.opts.bookingUrl)
}

// pick 从回复池均匀随机取一条
func (s *responderService) pick(pool []enum.Reply) enum.Reply {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return pool[s.rand.Intn(len(pool))]
}

// record 上报遥测, 任何失败都不影响回复
func (s *responderService) record(it enum.Intent, extra map[string]interface{}) {
	if s.telemetry == nil {
		return
	}
	s.telemetry.Record(it, extra)
}
