package account

import (
	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
)

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
	User        *ProfileResp `json:"user"`
}

type ProfileResp struct {
	UUID           uuid.UUID   `json:"uuid"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Role           common.Role `json:"role"`
	Department     *string     `json:"department"`
	Specialization *string     `json:"specialization"`
	Experience     int         `json:"experience"`
	Thumbnail      *string     `json:"thumbnail"`
}
