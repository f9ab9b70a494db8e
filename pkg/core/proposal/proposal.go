package proposal

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
)

// Service 提案相关业务接口
type Service interface {
	// Submit 学生对开放任务提交提案
	Submit(ctx context.Context, req *SubmitReq) (*SubmitResp, error)
	// Review 设施管理员推进提案审批状态
	Review(ctx context.Context, req *ReviewReq) error
	// ListMine 当前学生的提案列表
	ListMine(ctx context.Context, req *ListMineReq) (*common.PageResp[[]*ProposalDetail], error)
}
