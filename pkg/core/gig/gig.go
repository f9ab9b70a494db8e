package gig

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
)

// Service 科研任务（gig）相关业务接口。
// 所有方法均接受 context.Context，web 层可直接传入 *gin.Context
// 以便在实现内部获取用户信息、日志、DB会话等。
type Service interface {
	// Create 发布任务
	Create(ctx context.Context, req *CreateReq) (*CreateResp, error)
	// List 列出当前设施管理员可见范围内的任务
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*GigSummary], error)
	// Info 任务详情，含提案列表
	Info(ctx context.Context, req *InfoReq) (*InfoResp, error)
	// Update 更新任务，仅创建者可操作
	Update(ctx context.Context, req *UpdateReq) error
}
