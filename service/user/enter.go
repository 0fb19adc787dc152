package user

type ServiceGroup struct {
	ResponderService ResponderService
	TelemetryService TelemetryService
	LlmService       LlmService
	ScheduleService  ScheduleService
	DashboardService DashboardService
	Validator        IValidator
}

func NewServiceGroup() ServiceGroup {
	telemetry := NewTelemetryService()
	return ServiceGroup{
		ResponderService: NewResponderService(telemetry),
		TelemetryService: telemetry,
		LlmService:       NewLlmService(),
		ScheduleService:  NewScheduleService(),
		DashboardService: NewDashboardService(),
		Validator:        &Validator{},
	}
}
