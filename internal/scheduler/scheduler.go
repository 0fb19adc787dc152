package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/taoJie_1/consult-agent/model/config"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Service 定义第三方预约平台(Calendly风格API)的客户端接口
type Service interface {
	// CreateBookingLink 申请一个一次性的预约链接
	CreateBookingLink(ctx context.Context) (string, error)
}

type client struct {
	http *resty.Client
	cfg  config.Scheduler
	log  *logrus.Logger
}

// schedulingLinkRequest 预约平台创建链接的请求体
type schedulingLinkRequest struct {
	MaxEventCount int    `json:"max_event_count"`
	Owner         string `json:"owner"`
	OwnerType     string `json:"owner_type"`
}

// schedulingLinkResponse 预约平台创建链接的响应体
type schedulingLinkResponse struct {
	Resource struct {
		BookingUrl string `json:"booking_url"`
	} `json:"resource"`
}

// NewClient 创建预约平台客户端
func NewClient(cfg config.Scheduler, log *logrus.Logger) (Service, error) {
	if cfg.Url == "" || cfg.Auth == "" {
		return nil, errors.New("预约平台未配置url或auth")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5
	}

	http := resty.New().
		SetBaseURL(cfg.Url).
		SetAuthToken(cfg.Auth).
		SetTimeout(time.Duration(timeout) * time.Second).
		SetRetryCount(1)

	return &client{http: http, cfg: cfg, log: log}, nil
}

func (c *client) CreateBookingLink(ctx context.Context) (string, error) {
	var result schedulingLinkResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(schedulingLinkRequest{
			MaxEventCount: 1,
			Owner:         c.cfg.Owner,
			OwnerType:     "EventType",
		}).
		SetResult(&result).
		Post("/scheduling_links")
	if err != nil {
		return "", fmt.Errorf("调用预约平台失败: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("预约平台返回异常状态: %s", resp.Status())
	}

	if result.Resource.BookingUrl == "" {
		return "", errors.New("预约平台返回了空链接")
	}

	return result.Resource.BookingUrl, nil
}
