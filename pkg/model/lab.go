package model

import (
	"time"
)

type Lab struct {
	BaseModel
	Name         string  `gorm:"type:varchar(255);not null;index:idx_labs_name" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	Category     string  `gorm:"type:varchar(128);index:idx_labs_category" json:"category"`
	Location     string  `gorm:"type:varchar(255)" json:"location"`
	Capacity     int     `gorm:"not null;default:0" json:"capacity"`
	ThumbnailURL *string `gorm:"type:text" json:"thumbnail_url"`
}

func (*Lab) TableName() string { return "labs" }

// FacilitatorLab 设施管理员与实验室的多对多指派关系，
// 设施管理员可见范围的唯一依据
type FacilitatorLab struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FacilitatorID int64     `gorm:"not null;uniqueIndex:idx_facilitator_lab_pair;index:idx_facilitator_lab_user" json:"facilitator_id"`
	LabID         int64     `gorm:"not null;uniqueIndex:idx_facilitator_lab_pair;index:idx_facilitator_lab_lab" json:"lab_id"`
	AssignedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"assigned_at"`
}

func (*FacilitatorLab) TableName() string { return "facilitator_lab" }
