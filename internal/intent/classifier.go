package intent

import (
	"regexp"
	"strings"
)

// 各意图的触发词表
// 词表是固定的; 阈值类的可调参数放在配置里, 词表不是
var (
	greetingTokens  = tokenSet("hi", "hello", "hey", "yo", "hiya", "howdy", "greetings")
	howAreYouTokens = tokenSet("hru", "wyd", "sup")

	quoteTokens   = tokenSet("quote", "pricing", "estimate", "cost", "budget")
	pricingTokens = tokenSet("pricing", "price", "cost", "estimate", "quote", "rates")

	projectTokens  = tokenSet("project", "product", "build", "plan", "launch", "saas", "app")
	outlineTokens  = tokenSet("outline", "plan", "steps", "roadmap")
	timelineTokens = tokenSet("timeline", "deadline", "when", "soon", "fast", "rush")
	domainTokens   = tokenSet("health", "healthcare", "medical", "finance", "fintech", "insurance", "gov", "government")
	scheduleTokens = tokenSet("schedule", "meet", "meeting", "call", "calendly", "book")
)

var (
	// 整词匹配的时间范围表达
	timeframePattern = regexp.MustCompile(`(?i)\b(days?|weeks?|months?|deadline|today|tomorrow|next)\b`)
	// 裸数字(可带k后缀)或规模用词
	volumePattern = regexp.MustCompile(`(?i)\b\d+k?\b|\b(users?|seats?|daily|monthly)\b`)
)

func tokenSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func anyIn(tokens []string, set map[string]struct{}) bool {
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// IsGreeting 词元中含任意问候词
func IsGreeting(tokens []string) bool {
	return anyIn(tokens, greetingTokens)
}

// IsHowAreYou 原文含"how are you"短语, 或词元命中缩写
func IsHowAreYou(raw string, tokens []string) bool {
	if strings.Contains(strings.ToLower(raw), "how are you") {
		return true
	}
	return anyIn(tokens, howAreYouTokens)
}

func IsQuoteIntent(tokens []string) bool {
	return anyIn(tokens, quoteTokens)
}

func IsPricingIntent(tokens []string) bool {
	return anyIn(tokens, pricingTokens)
}

// IsCostIntent 报价或定价任一命中即为真(逻辑或, 两词表刻意有重叠)
func IsCostIntent(tokens []string) bool {
	return IsQuoteIntent(tokens) || IsPricingIntent(tokens)
}

func IsProjectIntent(tokens []string) bool {
	return anyIn(tokens, projectTokens)
}

func IsOutlineIntent(tokens []string) bool {
	return anyIn(tokens, outlineTokens)
}

func IsTimelineIntent(tokens []string) bool {
	return anyIn(tokens, timelineTokens)
}

func IsDomainIntent(tokens []string) bool {
	return anyIn(tokens, domainTokens)
}

func IsScheduleIntent(tokens []string) bool {
	return anyIn(tokens, scheduleTokens)
}

// HasTimeframe 原文是否出现整词的时间范围表达
func HasTimeframe(raw string) bool {
	return timeframePattern.MatchString(raw)
}

// HasVolume 原文是否出现规模线索(裸数字或用户/席位/频率用词)
func HasVolume(raw string) bool {
	return volumePattern.MatchString(raw)
}
