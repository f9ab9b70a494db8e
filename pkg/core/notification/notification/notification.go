package notification

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	core "github.com/srinivas-tce/labgigs/pkg/core/notification"
	auth "github.com/srinivas-tce/labgigs/pkg/middleware/auth"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
	repoNotification "github.com/srinivas-tce/labgigs/pkg/repo/notification"
)

type notificationImpl struct {
	store repo.NotificationRepo
}

func New() core.Service {
	return &notificationImpl{store: repoNotification.NewNotificationRepo()}
}

func NewWithStores(store repo.NotificationRepo) core.Service {
	return &notificationImpl{store: store}
}

func (n *notificationImpl) List(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.NotificationItem], error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	req.Normalize()
	resp := &common.PageResp[[]*core.NotificationItem]{
		Data:     []*core.NotificationItem{},
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	items, total, err := n.store.ListByUser(ctx, currentUser.ID, req.Offest(), req.PageSize)
	if err != nil {
		logger.Errorf(ctx, "ListByUser err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	resp.Total = total
	for _, item := range items {
		resp.Data = append(resp.Data, &core.NotificationItem{
			UUID:      item.UUID,
			Type:      item.Type,
			Title:     item.Title,
			Message:   item.Message,
			Data:      item.Data,
			Status:    item.Status,
			ReadAt:    item.ReadAt,
			CreatedAt: item.CreatedAt,
		})
	}
	return resp, nil
}

func (n *notificationImpl) MarkRead(ctx context.Context, req *core.MarkReadReq) error {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return code.UnLogin
	}
	if err := n.store.MarkRead(ctx, currentUser.ID, req.UUIDs); err != nil {
		logger.Errorf(ctx, "MarkRead err: %+v", err)
		return err
	}
	return nil
}
