package user

type ApiGroup struct {
	ChatApi      ChatApi
	ScheduleApi  ScheduleApi
	DashboardApi DashboardApi
}
