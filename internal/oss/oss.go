package oss

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"gitee.com/taoJie_1/consult-agent/model/config"
	"gitee.com/taoJie_1/consult-agent/utils"
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Service 定义对象存储服务的接口
type Service interface {
	// UploadFile 上传 multipart 表单中的文件，并返回对象键。
	UploadFile(file *multipart.FileHeader) (string, error)
	// GetURL 为给定的对象键生成可公开访问的 URL。
	GetURL(objectKey string) string
}

type aliyunOssService struct {
	client   *oss.Client
	bucket   *oss.Bucket
	config   config.Oss
	location *time.Location // 注入时区信息
}

// NewClient 创建一个新的 OSS 服务客户端。
// location 用于生成按年月归档的对象键。
func NewClient(cfg config.Oss, location *time.Location) (Service, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("OSS未配置endpoint或bucket")
	}

	// OSS SDK 的 Endpoint 不包含协议头，如果配置中包含了协议头，需要去除
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")

	client, err := oss.New(endpoint, cfg.AccessKeyId, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("创建OSS客户端失败: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("获取OSS bucket失败: %w", err)
	}

	return &aliyunOssService{
		client:   client,
		bucket:   bucket,
		config:   cfg,
		location: location,
	}, nil
}

func (s *aliyunOssService) UploadFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	dir, name := utils.ReadyFile(s.config.Dir, s.location, filepath.Ext(file.Filename))
	if name == "" {
		return "", errors.New("生成对象键失败")
	}
	objectKey := strings.TrimLeft(dir+name, "/")

	if err := s.bucket.PutObject(objectKey, src); err != nil {
		return "", fmt.Errorf("上传到OSS失败: %w", err)
	}

	return objectKey, nil
}

func (s *aliyunOssService) GetURL(objectKey string) string {
	if s.config.Domain != "" {
		u, err := url.JoinPath(s.config.Domain, objectKey)
		if err == nil {
			return u
		}
	}
	return fmt.Sprintf("https://%s.%s/%s", s.config.Bucket, strings.TrimPrefix(strings.TrimPrefix(s.config.Endpoint, "https://"), "http://"), objectKey)
}
