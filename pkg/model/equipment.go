package model

import (
	"time"
)

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentRequested   EquipmentStatus = "requested"
	EquipmentAllocated   EquipmentStatus = "allocated"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentRetired     EquipmentStatus = "retired"
)

type Equipment struct {
	BaseModel
	LabID         int64           `gorm:"not null;index:idx_equipment_lab_id" json:"lab_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	SerialNumber  string          `gorm:"type:varchar(128);not null;uniqueIndex" json:"serial_number"`
	Category      string          `gorm:"type:varchar(128);index:idx_equipment_category" json:"category"`
	Status        EquipmentStatus `gorm:"type:varchar(32);not null;default:'available';index:idx_equipment_status" json:"status"`
	Condition     string          `gorm:"type:varchar(64)" json:"condition"`
	PurchaseDate  *time.Time      `gorm:"type:date" json:"purchase_date"`
	Cost          float64         `gorm:"type:numeric(12,2);not null;default:0" json:"cost"`
	AssignedTo    *int64          `gorm:"index:idx_equipment_assigned_to" json:"assigned_to"`
	ImageURL      *string         `gorm:"type:text" json:"image_url"`
	LastCheckedAt *time.Time      `json:"last_checked_at"`
}

func (*Equipment) TableName() string { return "equipment" }

type RequestStatus string

const (
	RequestRequested RequestStatus = "requested"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
)

// EquipmentRequest 学生对设备的占用申请。
// ProposalID 可空：申请可以独立存在，也可以挂在一份真实提案下
type EquipmentRequest struct {
	BaseModel
	ProposalID       *int64        `gorm:"index:idx_equipment_request_proposal" json:"proposal_id"`
	EquipmentID      int64         `gorm:"not null;index:idx_equipment_request_equipment" json:"equipment_id"`
	StudentID        int64         `gorm:"not null;index:idx_equipment_request_student" json:"student_id"`
	FacilitatorID    int64         `gorm:"not null;index:idx_equipment_request_facilitator" json:"facilitator_id"`
	Quantity         int           `gorm:"not null;default:1" json:"quantity"`
	Purpose          string        `gorm:"type:text;not null" json:"purpose"`
	StartDate        time.Time     `gorm:"not null" json:"start_date"`
	EndDate          time.Time     `gorm:"not null" json:"end_date"`
	Status           RequestStatus `gorm:"type:varchar(32);not null;default:'requested';index:idx_equipment_request_status" json:"status"`
	ApprovalComments *string       `gorm:"type:text" json:"approval_comments"`
	ApprovedAt       *time.Time    `json:"approved_at"`
}

func (*EquipmentRequest) TableName() string { return "equipment_request" }
