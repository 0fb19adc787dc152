package user

import (
	"strings"
	"testing"

	"gitee.com/taoJie_1/consult-agent/model/common"
)

// TestValidatorChatRequest 空消息与超长消息都应被拒绝
func TestValidatorChatRequest(t *testing.T) {
	v := &Validator{}

	if err := v.ValidatorChatRequest(&common.ChatRequest{Message: "hello"}); err != nil {
		t.Errorf("正常消息不应报错: %v", err)
	}
	if err := v.ValidatorChatRequest(&common.ChatRequest{Message: "   "}); err == nil {
		t.Error("空白消息应报错")
	}
	if err := v.ValidatorChatRequest(&common.ChatRequest{Message: strings.Repeat("长", maxMessageLength+1)}); err == nil {
		t.Error("超长消息应报错")
	}
}
