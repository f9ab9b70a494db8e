package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

type NotificationRepo interface {
	CreateNotification(ctx context.Context, data *model.Notification) error
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*model.Notification, int64, error)
	// 只标记属于 userID 的通知
	MarkRead(ctx context.Context, userID int64, uuids []uuid.UUID) error
}
