package service

import (
	"gitee.com/taoJie_1/consult-agent/service/admin"
	"gitee.com/taoJie_1/consult-agent/service/user"
)

type ServiceGroup struct {
	UserServiceGroup  user.ServiceGroup
	AdminServiceGroup admin.ServiceGroup
}

var Service = new(ServiceGroup)
