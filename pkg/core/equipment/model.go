package equipment

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

type CreateReq struct {
	LabUUID      uuid.UUID  `json:"lab_uuid" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	SerialNumber string     `json:"serial_number" binding:"required"`
	Category     string     `json:"category"`
	Condition    string     `json:"condition"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Cost         float64    `json:"cost" binding:"omitempty,gte=0"`
	ImageURL     *string    `json:"image_url"`
}

type CreateResp struct {
	UUID uuid.UUID `json:"uuid"`
}

type ListReq struct {
	common.PageReq

	Status   *model.EquipmentStatus `form:"status"`
	Category *string                `form:"category"`
}

type LabSummary struct {
	UUID uuid.UUID `json:"uuid"`
	Name string    `json:"name"`
}

type EquipmentDetail struct {
	UUID         uuid.UUID             `json:"uuid"`
	Name         string                `json:"name"`
	SerialNumber string                `json:"serial_number"`
	Category     string                `json:"category"`
	Status       model.EquipmentStatus `json:"status"`
	Condition    string                `json:"condition"`
	PurchaseDate *time.Time            `json:"purchase_date"`
	Cost         float64               `json:"cost"`
	ImageURL     *string               `json:"image_url"`
	Lab          *LabSummary           `json:"lab"`
}

// RequestReq 设备占用申请。ProposalUUID 可选，
// 传入时必须指向申请者本人的提案
type RequestReq struct {
	EquipmentUUID uuid.UUID  `json:"equipment_uuid" binding:"required"`
	ProposalUUID  *uuid.UUID `json:"proposal_uuid"`
	Quantity      int        `json:"quantity"`
	Purpose       string     `json:"purpose" binding:"required"`
	StartDate     time.Time  `json:"start_date" binding:"required"`
	EndDate       time.Time  `json:"end_date" binding:"required"`
}

type RequestResp struct {
	UUID   uuid.UUID           `json:"uuid"`
	Status model.RequestStatus `json:"status"`
}

type ListRequestsReq struct {
	common.PageReq

	Status *model.RequestStatus `form:"status"`
}

type UserSummary struct {
	UUID  uuid.UUID `json:"uuid"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type RequestDetail struct {
	UUID             uuid.UUID           `json:"uuid"`
	Quantity         int                 `json:"quantity"`
	Purpose          string              `json:"purpose"`
	StartDate        time.Time           `json:"start_date"`
	EndDate          time.Time           `json:"end_date"`
	Status           model.RequestStatus `json:"status"`
	ApprovalComments *string             `json:"approval_comments"`
	ApprovedAt       *time.Time          `json:"approved_at"`
	CreatedAt        time.Time           `json:"created_at"`
	Equipment        *EquipmentDetail    `json:"equipment"`
	Student          *UserSummary        `json:"student"`
}

type DecideReq struct {
	RequestUUID      uuid.UUID           `json:"request_uuid" binding:"required"`
	Status           model.RequestStatus `json:"status" binding:"required"`
	ApprovalComments *string             `json:"approval_comments"`
}
