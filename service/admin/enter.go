package admin

type ServiceGroup struct {
	UploadService UploadService
}

func NewServiceGroup() ServiceGroup {
	return ServiceGroup{
		UploadService: NewUploadService(),
	}
}
