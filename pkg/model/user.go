package model

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
)

type User struct {
	BaseModel
	Email           string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name            string      `gorm:"type:varchar(255);not null" json:"name"`
	Role            common.Role `gorm:"type:varchar(32);not null;index:idx_users_role" json:"role"`
	PasswordHash    string      `gorm:"type:varchar(255);not null" json:"-"`
	Department      *string     `gorm:"type:varchar(255)" json:"department"`
	Experience      int         `gorm:"not null;default:0" json:"experience"`
	Specialization  *string     `gorm:"type:varchar(255)" json:"specialization"`
	Thumbnail       *string     `gorm:"type:text" json:"thumbnail"`
	EmailVerifiedAt *time.Time  `json:"email_verified_at"`
}

func (*User) TableName() string { return "users" }

// UserData 鉴权中间件注入的调用者身份
type UserData struct {
	ID    int64       `json:"id"`
	UUID  uuid.UUID   `json:"uuid"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  common.Role `json:"role"`
}
