package user

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gitee.com/taoJie_1/consult-agent/model/common"
)

// 单条消息的最大长度(字符)
const maxMessageLength = 2000

type IValidator interface {
	ValidatorChatRequest(data *common.ChatRequest) error
}

type Validator struct{}

func (v *Validator) ValidatorChatRequest(data *common.ChatRequest) error {
	if strings.TrimSpace(data.Message) == "" {
		return errors.New("参数错误[vcr01]")
	}
	if utf8.RuneCountInString(data.Message) > maxMessageLength {
		return errors.New("消息过长[vcr02]")
	}
	return nil
}
