package enum

// 固定话术
// 应答器的可观测输出依赖这些文本, 修改前先同步单元测试
type Reply string

const (
	// 问候健康类的固定回复
	ReplyHowAreYou Reply = `Doing great, thanks for asking! I'm here to help with our services, pricing, or planning your project. What are you working on?`
	// "快速计划"话术, %s 为预约链接
	ReplyQuickPlanFormat Reply = `Here's the quick plan: 1) a short scope call, 2) we propose a stack and budget, 3) we build and test in weekly slices. Grab a slot: %s`
	// 时间线意图的固定回复
	ReplyTimeline Reply = `Got it, the clock matters. When does this need to be live, and what are the must-haves for launch?`
	// 受监管行业的固定回复
	ReplyDomain Reply = `Sounds like regulated data could be involved (HIPAA / PII / PCI). What data will you store, and how do users authenticate?`
	// 预约意图的固定回复, %s 为预约链接
	ReplyScheduleFormat Reply = `Happy to set up a call. Book a slot here: %s — or I can sketch a quick outline first if you prefer.`
	// 通用兜底话术(低置信度或条目无答案时)
	ReplyFallbackPrompt Reply = `Tell me your focus — services, pricing, or a project idea — and I'll point you the right way.`
	// 聊天接口的最终兜底(线上与离线均无结果)
	ReplyMsgDefault Reply = `I didn't quite catch that. Could you rephrase, or ask about our services, pricing, or booking a call?`
)

// 问候语回复池, 随机取一条
var GreetingReplies = []Reply{
	`Hey! Welcome. Ask me about services, pricing, or tell me what you want to build.`,
	`Hi there! I can help with project scoping, pricing, or booking a call. What's on your mind?`,
	`Hello! Tell me about your project, or ask anything about how we work.`,
}

// 报价追问回复池, 随机取一条
var PricingFollowups = []Reply{
	`Happy to talk numbers. What will the product do day to day, and does it need to integrate with anything you already run?`,
	`Pricing depends on scope. Roughly how many users do you expect, and which integrations are must-haves?`,
}

// 知识库回答的随机跟进语
var KbFollowups = []Reply{
	`Want more detail on that?`,
	`Does that answer your question?`,
	`Anything else I can clarify?`,
}

// 规模感知的报价回复, 第一个 %s 为时间线补充子句(可为空)
const ReplyCostVolumeFormat Reply = `Thanks — that volume helps me size it%s. As a rough range, an MVP at that scale usually lands between a few weeks and a few months of build. What has to be in v1?`

// 近期时间线补充子句, 插入到规模感知回复中
const ReplyNearTermClause = `, and a near-term deadline is workable`

// 项目确认回复, 依次为: 回声片段 / "本周"限定词(可为空) / 快速计划话术
const ReplyProjectAckFormat Reply = `Sounds good — "%s" is something we can scope%s. %s`

// 项目确认中的时间限定词
const ReplyThisWeekQualifier = ` this week`
