package admin

import (
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/consult-agent/model/common"
	"gitee.com/taoJie_1/consult-agent/service"
)

type ApiGroup struct {
	UploadApi UploadApi
}

type UploadApi struct{}

// UploadImage 上传营销素材图片, 返回可公开访问的URL
func (d *UploadApi) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		common.Fail(ctx, "未找到上传文件")
		return
	}

	url, err := service.Service.AdminServiceGroup.UploadService.UploadImage(file)
	if err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	common.Success(ctx, map[string]string{"url": url})
}
