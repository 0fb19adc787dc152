package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/internal/llm"
	"gitee.com/taoJie_1/consult-agent/internal/oss"
	"gitee.com/taoJie_1/consult-agent/internal/redis"
	"gitee.com/taoJie_1/consult-agent/internal/scheduler"
	"gitee.com/taoJie_1/consult-agent/model/enum"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"
)

// initRedis 初始化Redis客户端(意图遥测计数)
func (i *Initializer) initRedis() error {
	client, err := redis.NewClient(
		global.Config.Redis.Addr,
		global.Config.Redis.Password,
		global.Config.Redis.DB,
	)
	if err != nil {
		global.Log.Warnf("初始化Redis失败, 意图遥测不可用: %v", err)
		return err
	}
	global.RedisClient = client
	global.Log.Info("初始化Redis服务成功")
	return nil
}

// redisClose 关闭Redis客户端连接
func (i *Initializer) redisClose() error {
	if global.RedisClient != nil {
		return global.RedisClient.Close()
	}
	return nil
}

func (i *Initializer) initLlm() error {
	if err := i.doInitLlm(); err != nil {
		global.Log.Warnf("初始化LLM服务失败, 聊天将走离线应答: %v", err)
		return err
	}
	global.Log.Info("初始化LLM服务成功")
	return nil
}

func (i *Initializer) doInitLlm() error {
	if len(global.Config.Llm) == 0 {
		return fmt.Errorf("未配置任何LLM")
	}

	llmClients := make(map[enum.LlmSize]*openai.Client, len(global.Config.Llm))
	for _, cfg := range global.Config.Llm {
		config := openai.DefaultConfig(cfg.Auth)
		config.BaseURL = cfg.Url
		config.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}
		llmClients[enum.LlmSize(cfg.Size)] = openai.NewClientWithConfig(config)
	}

	g, gCtx := errgroup.WithContext(context.Background())
	// 并发地对所有配置的LLM服务进行连接测试
	for _, cfg := range global.Config.Llm {
		cfg := cfg // 避免闭包陷阱
		g.Go(func() error {
			size := enum.LlmSize(cfg.Size)
			client := llmClients[size]

			reqCtx, cancel := context.WithTimeout(gCtx, 5*time.Second)
			defer cancel()

			// 通过ListModels接口验证服务是否可用
			if _, err := client.ListModels(reqCtx); err != nil {
				return fmt.Errorf("无法连接到LLM服务 (size: %s, url: %s): %w", size, cfg.Url, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	global.Llm = llmClients
	global.LlmService = llm.NewClient(
		global.Log,
		llmClients,
		global.Config.Llm,
	)
	return nil
}

// initScheduler 初始化第三方预约平台客户端
func (i *Initializer) initScheduler() error {
	client, err := scheduler.NewClient(global.Config.Scheduler, global.Log)
	if err != nil {
		global.Log.Warnf("初始化预约平台失败, 将回落到固定预约链接: %v", err)
		return err
	}
	global.SchedulerService = client
	global.Log.Info("初始化预约平台成功")
	return nil
}

func (i *Initializer) initOss() error {
	cfg := global.Config.Oss
	if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKeyId == "" || cfg.AccessKeySecret == "" {
		global.Log.Info("OSS配置不完整，跳过初始化")
		return nil
	}

	// 传递全局时区信息给OSS客户端
	client, err := oss.NewClient(cfg, global.Tz)
	if err != nil {
		global.Log.Warnf("初始化OSS服务失败: %v", err)
		return err
	}
	global.OssService = client
	global.Log.Info("初始化OSS服务成功")
	return nil
}
