package notification

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
)

// Service 站内通知业务接口
type Service interface {
	// List 当前用户的通知列表，按时间倒序
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*NotificationItem], error)
	// MarkRead 批量标记已读，只作用于当前用户自己的通知
	MarkRead(ctx context.Context, req *MarkReadReq) error
}
