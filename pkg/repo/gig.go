package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

// GigQuery 过滤条件，LabIDs 为空表示可见范围为空
type GigQuery struct {
	LabIDs  []int64
	Status  *model.GigStatus
	OrderBy string // 默认 id desc
	Offset  int
	Limit   int
}

// ProposalHistogram 单个 gig 下按提案状态聚合的计数
type ProposalHistogram struct {
	Total       int64 `json:"total"`
	Draft       int64 `json:"draft"`
	Submitted   int64 `json:"submitted"`
	UnderReview int64 `json:"under_review"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
}

type GigRepo interface {
	Base

	CreateGig(ctx context.Context, data *model.Gig) error
	GetGigByUUID(ctx context.Context, id uuid.UUID) (*model.Gig, error)
	GetGigByID(ctx context.Context, id int64) (*model.Gig, error)
	// data 只包含需要更新的字段
	UpdateGig(ctx context.Context, id int64, data map[string]any) error
	ListGigs(ctx context.Context, q GigQuery) ([]*model.Gig, int64, error)
	// gig id -> 提案状态直方图，没有提案的 gig 不在返回里
	ProposalHistograms(ctx context.Context, gigIDs []int64) (map[int64]*ProposalHistogram, error)
}
