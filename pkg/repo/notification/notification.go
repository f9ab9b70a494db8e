package notification

import (
	// 外部依赖
	"context"
	"time"

	// 内部引用
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
)

type notificationImpl struct {
	*repo.BaseDB
}

func NewNotificationRepo() repo.NotificationRepo {
	return &notificationImpl{BaseDB: repo.NewBaseDB()}
}

func (n *notificationImpl) CreateNotification(ctx context.Context, data *model.Notification) error {
	if err := n.DBWithContext(ctx).Create(data).Error; err != nil {
		logger.Errorf(ctx, "CreateNotification err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (n *notificationImpl) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*model.Notification, int64, error) {
	db := n.DBWithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	var datas []*model.Notification
	if err := db.Order("id desc").Offset(offset).Limit(limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (n *notificationImpl) MarkRead(ctx context.Context, userID int64, uuids []uuid.UUID) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := n.DBWithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND uuid IN ?", userID, uuids).
		Updates(map[string]any{
			"status":  model.NotificationRead,
			"read_at": time.Now(),
		}).Error; err != nil {
		logger.Errorf(ctx, "MarkRead err: %+v", err)
		return code.UpdateDataErr.WithErr(err)
	}
	return nil
}
