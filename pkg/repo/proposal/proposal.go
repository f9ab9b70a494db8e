package proposal

import (
	// 外部依赖
	"context"

	// 内部引用
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
)

type proposalImpl struct {
	*repo.BaseDB
}

func NewProposalRepo() repo.ProposalRepo {
	return &proposalImpl{BaseDB: repo.NewBaseDB()}
}

func (p *proposalImpl) CreateProposal(ctx context.Context, data *model.Proposal) error {
	if err := p.DBWithContext(ctx).Create(data).Error; err != nil {
		logger.Errorf(ctx, "CreateProposal err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (p *proposalImpl) GetProposalByUUID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	data := &model.Proposal{}
	err := p.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	return data, err
}

func (p *proposalImpl) UpdateProposal(ctx context.Context, id int64, data map[string]any) error {
	if err := p.DBWithContext(ctx).Model(&model.Proposal{}).
		Where("id = ?", id).
		Updates(data).Error; err != nil {
		logger.Errorf(ctx, "UpdateProposal err: %+v", err)
		return code.UpdateDataErr.WithErr(err)
	}
	return nil
}

func (p *proposalImpl) ListByGig(ctx context.Context, gigID int64) ([]*model.Proposal, error) {
	var datas []*model.Proposal
	if err := p.DBWithContext(ctx).
		Where("gig_id = ?", gigID).
		Order("submitted_at desc").
		Find(&datas).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return datas, nil
}

func (p *proposalImpl) ListByStudent(ctx context.Context, studentID int64, offset, limit int) ([]*model.Proposal, int64, error) {
	db := p.DBWithContext(ctx).Model(&model.Proposal{}).Where("student_id = ?", studentID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	var datas []*model.Proposal
	if err := db.Order("submitted_at desc").Offset(offset).Limit(limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (p *proposalImpl) CountForGig(ctx context.Context, gigID int64) (int64, error) {
	var total int64
	err := p.DBWithContext(ctx).Model(&model.Proposal{}).
		Where("gig_id = ?", gigID).
		Count(&total).Error
	if err != nil {
		return 0, code.QueryRecordErr.WithErr(err)
	}
	return total, nil
}
