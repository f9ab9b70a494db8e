package model

import (
	// 外部依赖
	"time"

	datatypes "gorm.io/datatypes"
)

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

type Notification struct {
	BaseModel
	UserID  int64              `gorm:"not null;index:idx_notifications_user_id" json:"user_id"`
	Type    string             `gorm:"type:varchar(64);not null" json:"type"`
	Title   string             `gorm:"type:varchar(255);not null" json:"title"`
	Message string             `gorm:"type:text" json:"message"`
	Data    datatypes.JSON     `gorm:"type:jsonb" json:"data"`
	Status  NotificationStatus `gorm:"type:varchar(16);not null;default:'unread';index:idx_notifications_status" json:"status"`
	ReadAt  *time.Time         `json:"read_at"`
}

func (*Notification) TableName() string { return "notifications" }
