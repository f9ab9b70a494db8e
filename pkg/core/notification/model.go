package notification

import (
	// 外部依赖
	"time"

	datatypes "gorm.io/datatypes"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

type ListReq struct {
	common.PageReq
}

type NotificationItem struct {
	UUID      uuid.UUID                `json:"uuid"`
	Type      string                   `json:"type"`
	Title     string                   `json:"title"`
	Message   string                   `json:"message"`
	Data      datatypes.JSON           `json:"data"`
	Status    model.NotificationStatus `json:"status"`
	ReadAt    *time.Time               `json:"read_at"`
	CreatedAt time.Time                `json:"created_at"`
}

type MarkReadReq struct {
	UUIDs []uuid.UUID `json:"uuids" binding:"required,min=1"`
}
