package gig

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

type gigImpl struct {
	*repo.BaseDB
}

func NewGigRepo() repo.GigRepo {
	return &gigImpl{BaseDB: repo.NewBaseDB()}
}

func (g *gigImpl) CreateGig(ctx context.Context, data *model.Gig) error {
	if err := g.DBWithContext(ctx).Create(data).Error; err != nil {
		logger.Errorf(ctx, "CreateGig err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (g *gigImpl) GetGigByUUID(ctx context.Context, id uuid.UUID) (*model.Gig, error) {
	data := &model.Gig{}
	err := g.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	return data, err
}

func (g *gigImpl) GetGigByID(ctx context.Context, id int64) (*model.Gig, error) {
	data := &model.Gig{}
	err := g.DBWithContext(ctx).Where("id = ?", id).First(data).Error
	return data, err
}

func (g *gigImpl) UpdateGig(ctx context.Context, id int64, data map[string]any) error {
	if err := g.DBWithContext(ctx).Model(&model.Gig{}).
		Where("id = ?", id).
		Updates(data).Error; err != nil {
		logger.Errorf(ctx, "UpdateGig err: %+v", err)
		return code.UpdateDataErr.WithErr(err)
	}
	return nil
}

func (g *gigImpl) ListGigs(ctx context.Context, q repo.GigQuery) ([]*model.Gig, int64, error) {
	if len(q.LabIDs) == 0 {
		return nil, 0, nil
	}

	db := g.DBWithContext(ctx).Model(&model.Gig{}).Where("lab_id IN ?", q.LabIDs)
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "id desc"
	}

	var datas []*model.Gig
	if err := db.Order(orderBy).Offset(q.Offset).Limit(q.Limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

func (g *gigImpl) ProposalHistograms(ctx context.Context, gigIDs []int64) (map[int64]*repo.ProposalHistogram, error) {
	out := make(map[int64]*repo.ProposalHistogram, len(gigIDs))
	if len(gigIDs) == 0 {
		return out, nil
	}

	type row struct {
		GigID  int64
		Status model.ProposalStatus
		Cnt    int64
	}
	var rows []row
	if err := g.DBWithContext(ctx).Model(&model.Proposal{}).
		Select("gig_id, status, count(*) as cnt").
		Where("gig_id IN ?", gigIDs).
		Group("gig_id, status").
		Find(&rows).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}

	for _, r := range rows {
		h, ok := out[r.GigID]
		if !ok {
			h = &repo.ProposalHistogram{}
			out[r.GigID] = h
		}
		h.Total += r.Cnt
		switch r.Status {
		case model.ProposalDraft:
			h.Draft += r.Cnt
		case model.ProposalSubmitted:
			h.Submitted += r.Cnt
		case model.ProposalUnderReview:
			h.UnderReview += r.Cnt
		case model.ProposalApproved:
			h.Approved += r.Cnt
		case model.ProposalRejected:
			h.Rejected += r.Cnt
		}
	}
	return out, nil
}
