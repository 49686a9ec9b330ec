package response_models

import "boystrip/pkg/utils"

type Dashboard struct {
	Destination    string           `json:"destination"`
	Trip           utils.TripStatus `json:"trip"`
	TotalDays      int              `json:"totalDays"`
	ProfileCount   int64            `json:"profileCount"`
	ManagerCount   int64            `json:"managerCount"`
	ActivityCount  int64            `json:"activityCount"`
	Rooms          *RoomStats       `json:"rooms"`
	PendingAIUsage int64            `json:"pendingAiPayments"`
}
