package initialize

import (
	"flag"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/consult-agent/global"
	"gitee.com/taoJie_1/consult-agent/model/config"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "knowledge": 重建知识库后退出;`)
}

// New 创建一个新的初始化器，并加载配置文件
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	if configPath == "" {
		configPath = `config.yaml`
	}

	initializer := &Initializer{}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		panic("读取配置失败[u9ij]: " + configPath + err.Error())
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("配置文件变化[djiads]: ", e.Name)
		oldConfig := global.Config.DeepCopy()
		if err := v.Unmarshal(global.Config); err != nil {
			fmt.Println(err)
			return
		}
		handleConfig(global.Config)
		initializer.HandleConfigChange(oldConfig, global.Config)
	})

	if err := v.Unmarshal(global.Config); err != nil {
		panic("出错[dhfal]: " + err.Error())
	}

	handleConfig(global.Config)

	return initializer
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	c.StaticDir = strings.TrimRight(c.StaticDir, "/")

	if c.ProjectName == "" {
		c.ProjectName = "售前咨询助手"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":80"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.LogRetentionDays == 0 {
		c.LogRetentionDays = 30
	}
	if c.Tz == "" {
		c.Tz = "Asia/Shanghai"
	}
	if c.Database.Type == "" {
		c.Database.Type = "sqlite"
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data.db"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.TelemetryTTL == 0 {
		c.Redis.TelemetryTTL = 86400 * 7 // 面板默认看最近7天
	}
	for i := range c.Llm {
		if c.Llm[i].Timeout == 0 {
			c.Llm[i].Timeout = 10
		}
	}
	if c.Responder.MinMatchScore == 0 {
		c.Responder.MinMatchScore = 2
	}
	if c.Responder.EchoWords == 0 {
		c.Responder.EchoWords = 4
	}
	if c.Responder.SnippetLimit == 0 {
		c.Responder.SnippetLimit = 140
	}
	if c.Responder.KnowledgePath == "" {
		c.Responder.KnowledgePath = "data/knowledge.json"
	}
	if c.Responder.BookingUrl == "" {
		c.Responder.BookingUrl = "https://calendly.com"
	}
	if c.Scheduler.Timeout == 0 {
		c.Scheduler.Timeout = 5
	}
}
