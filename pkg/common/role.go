package common

type Role string

const (
	Student         Role = "student"
	Facilitator     Role = "facilitator"
	FacilityManager Role = "facility-manager"
	Admin           Role = "admin"
)

// IsFacilitator 实验室管理侧角色
func (r Role) IsFacilitator() bool {
	return r == Facilitator || r == FacilityManager
}
