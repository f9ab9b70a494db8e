package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

type ProposalRepo interface {
	Base

	CreateProposal(ctx context.Context, data *model.Proposal) error
	GetProposalByUUID(ctx context.Context, id uuid.UUID) (*model.Proposal, error)
	// data 只包含需要更新的字段
	UpdateProposal(ctx context.Context, id int64, data map[string]any) error
	ListByGig(ctx context.Context, gigID int64) ([]*model.Proposal, error)
	ListByStudent(ctx context.Context, studentID int64, offset, limit int) ([]*model.Proposal, int64, error)
	CountForGig(ctx context.Context, gigID int64) (int64, error)
}
