package enum

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

type Msg string

const (
	DefaultSuccessMsg Msg = `ok`
	DefaultFailMsg    Msg = `错误`
)

type ResCode int8

const (
	SuccessCode   ResCode = 0
	ErrorCode     ResCode = 1
	AuthErrorCode ResCode = 2
)

type SystemPrompt string

const (
	// 线上助手(LLM)的系统提示词, 面向工作室官网的售前咨询场景
	SystemPromptDefault SystemPrompt = `You are the pre-sales assistant of a small software consultancy. Answer questions about services, pricing, project planning and scheduling. Be concise and friendly, reply in the language of the question, and never invent prices beyond the published ranges.`
)

type LlmSize string

const (
	ModelSmall  LlmSize = "small"
	ModelMedium LlmSize = "medium"
	ModelLarge  LlmSize = "large"
)

// Intent 离线应答器识别的意图类别, 也是遥测计数的字段名
type Intent string

const (
	IntentHowAreYou     Intent = "how_are_you"
	IntentGreeting      Intent = "greeting"
	IntentOutline       Intent = "outline"
	IntentCostVolume    Intent = "cost_volume"
	IntentCost          Intent = "cost"
	IntentTimeline      Intent = "timeline"
	IntentDomain        Intent = "domain"
	IntentSchedule      Intent = "schedule"
	IntentProject       Intent = "project"
	IntentKbMatch       Intent = "kb_match"
	IntentLowConfidence Intent = "low_confidence"
	IntentFallback      Intent = "fallback"
)

// ReplySource 标记一条回复来自哪个应答源
type ReplySource string

const (
	ReplySourceLive    ReplySource = "live"
	ReplySourceOffline ReplySource = "offline"
	ReplySourceDefault ReplySource = "default"
)
