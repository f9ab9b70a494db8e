package equipment

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
)

// Service 设备与设备申请业务接口。
// 设备占用采用条件更新抢占，并发申请只有一个赢家
type Service interface {
	// Create 登记设备
	Create(ctx context.Context, req *CreateReq) (*CreateResp, error)
	// List 列出当前设施管理员可见范围内的设备
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*EquipmentDetail], error)
	// Request 学生发起设备占用申请
	Request(ctx context.Context, req *RequestReq) (*RequestResp, error)
	// ListRequests 列出可见范围内的设备申请
	ListRequests(ctx context.Context, req *ListRequestsReq) (*common.PageResp[[]*RequestDetail], error)
	// Decide 批准或驳回设备申请
	Decide(ctx context.Context, req *DecideReq) error
}
