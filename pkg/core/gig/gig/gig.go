package gig

import (
	// 外部依赖
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	gorm "gorm.io/gorm"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	core "github.com/srinivas-tce/labgigs/pkg/core/gig"
	auth "github.com/srinivas-tce/labgigs/pkg/middleware/auth"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
	repoAccount "github.com/srinivas-tce/labgigs/pkg/repo/account"
	repoGig "github.com/srinivas-tce/labgigs/pkg/repo/gig"
	repoProposal "github.com/srinivas-tce/labgigs/pkg/repo/proposal"
)

type gigImpl struct {
	gigStore      repo.GigRepo
	proposalStore repo.ProposalRepo
	accountStore  repo.AccountRepo
}

func New() core.Service {
	return &gigImpl{
		gigStore:      repoGig.NewGigRepo(),
		proposalStore: repoProposal.NewProposalRepo(),
		accountStore:  repoAccount.New(),
	}
}

func NewWithStores(gigStore repo.GigRepo, proposalStore repo.ProposalRepo, accountStore repo.AccountRepo) core.Service {
	return &gigImpl{
		gigStore:      gigStore,
		proposalStore: proposalStore,
		accountStore:  accountStore,
	}
}

// Create 发布任务：
// - 校验资格条件结构
// - lab_uuid -> lab 映射
// - 初始状态固定为 open
// 发布者不要求已被指派到目标实验室，指派关系只约束可见范围
func (g *gigImpl) Create(ctx context.Context, req *core.CreateReq) (*core.CreateResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}
	if !currentUser.Role.IsFacilitator() {
		return nil, code.RoleDenied
	}

	for _, c := range req.EligibilityCriteria {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	lab, err := g.accountStore.GetLabByUUID(ctx, req.LabUUID)
	if err != nil {
		return nil, code.LabNotFound
	}

	criteria, err := json.Marshal(req.EligibilityCriteria)
	if err != nil {
		return nil, code.ParamErr.WithErr(err)
	}

	data := &model.Gig{
		LabID:               lab.ID,
		Title:               req.Title,
		Description:         req.Description,
		SkillsRequired:      req.SkillsRequired,
		EligibilityCriteria: criteria,
		Status:              model.GigOpen,
		ApplicationDeadline: req.ApplicationDeadline,
		MaxApplications:     req.MaxApplications,
		CreatedBy:           currentUser.ID,
	}
	if data.MaxApplications <= 0 {
		data.MaxApplications = 10
	}

	if err := g.gigStore.CreateGig(ctx, data); err != nil {
		logger.Errorf(ctx, "CreateGig err: %+v", err)
		return nil, err
	}

	return &core.CreateResp{UUID: data.UUID}, nil
}

// List 按指派关系过滤可见范围，未指派任何实验室返回空页
func (g *gigImpl) List(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.GigSummary], error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	req.Normalize()
	resp := &common.PageResp[[]*core.GigSummary]{
		Data:     []*core.GigSummary{},
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	labIDs, err := g.accountStore.LabIDsForFacilitator(ctx, currentUser.ID)
	if err != nil {
		logger.Errorf(ctx, "LabIDsForFacilitator err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	if len(labIDs) == 0 {
		return resp, nil
	}

	gigs, total, err := g.gigStore.ListGigs(ctx, repo.GigQuery{
		LabIDs: labIDs,
		Status: req.Status,
		Offset: req.Offest(),
		Limit:  req.PageSize,
	})
	if err != nil {
		logger.Errorf(ctx, "ListGigs err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	resp.Total = total
	if len(gigs) == 0 {
		return resp, nil
	}

	summaries, err := g.buildSummaries(ctx, gigs)
	if err != nil {
		return nil, err
	}
	resp.Data = summaries
	return resp, nil
}

func (g *gigImpl) buildSummaries(ctx context.Context, gigs []*model.Gig) ([]*core.GigSummary, error) {
	gigIDs := make([]int64, 0, len(gigs))
	labIDs := make([]int64, 0, len(gigs))
	userIDs := make([]int64, 0, len(gigs))
	for _, item := range gigs {
		gigIDs = append(gigIDs, item.ID)
		labIDs = append(labIDs, item.LabID)
		userIDs = append(userIDs, item.CreatedBy)
	}

	labs, err := g.accountStore.BatchGetLabs(ctx, labIDs)
	if err != nil {
		logger.Errorf(ctx, "BatchGetLabs err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	users, err := g.accountStore.BatchGetUsers(ctx, userIDs)
	if err != nil {
		logger.Errorf(ctx, "BatchGetUsers err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	histograms, err := g.gigStore.ProposalHistograms(ctx, gigIDs)
	if err != nil {
		logger.Errorf(ctx, "ProposalHistograms err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}

	summaries := make([]*core.GigSummary, 0, len(gigs))
	for _, item := range gigs {
		s := &core.GigSummary{
			UUID:                item.UUID,
			Title:               item.Title,
			Description:         item.Description,
			SkillsRequired:      item.SkillsRequired,
			Status:              item.Status,
			ApplicationDeadline: item.ApplicationDeadline,
			MaxApplications:     item.MaxApplications,
			CreatedAt:           item.CreatedAt,
			Proposals:           histograms[item.ID],
		}
		if s.Proposals == nil {
			s.Proposals = &repo.ProposalHistogram{}
		}
		if lab := labs[item.LabID]; lab != nil {
			s.Lab = &core.LabSummary{
				UUID:     lab.UUID,
				Name:     lab.Name,
				Category: lab.Category,
				Location: lab.Location,
			}
		}
		if u := users[item.CreatedBy]; u != nil {
			s.Creator = &core.UserSummary{
				UUID:  u.UUID,
				Name:  u.Name,
				Email: u.Email,
				Role:  u.Role,
			}
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// Info 任务详情，范围外的任务一律按不存在处理
func (g *gigImpl) Info(ctx context.Context, req *core.InfoReq) (*core.InfoResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	data, err := g.gigStore.GetGigByUUID(ctx, req.GigUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.GigNotFound
		}
		logger.Errorf(ctx, "GetGigByUUID err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}

	labIDs, err := g.accountStore.LabIDsForFacilitator(ctx, currentUser.ID)
	if err != nil {
		logger.Errorf(ctx, "LabIDsForFacilitator err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	if !slices.Contains(labIDs, data.LabID) {
		return nil, code.GigNotFound
	}

	summaries, err := g.buildSummaries(ctx, []*model.Gig{data})
	if err != nil {
		return nil, err
	}
	resp := &core.InfoResp{GigSummary: *summaries[0]}

	if len(data.EligibilityCriteria) > 0 {
		if err := json.Unmarshal(data.EligibilityCriteria, &resp.EligibilityCriteria); err != nil {
			logger.Warnf(ctx, "unmarshal criteria err: %+v", err)
		}
	}

	proposals, err := g.proposalStore.ListByGig(ctx, data.ID)
	if err != nil {
		logger.Errorf(ctx, "ListByGig err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	studentIDs := make([]int64, 0, len(proposals))
	for _, p := range proposals {
		studentIDs = append(studentIDs, p.StudentID)
	}
	students, err := g.accountStore.BatchGetUsers(ctx, studentIDs)
	if err != nil {
		logger.Errorf(ctx, "BatchGetUsers err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}

	resp.ProposalList = make([]*core.ProposalItem, 0, len(proposals))
	for _, p := range proposals {
		item := &core.ProposalItem{
			UUID:        p.UUID,
			Title:       p.Title,
			Status:      p.Status,
			Score:       p.Score,
			SubmittedAt: p.SubmittedAt,
			ReviewedAt:  p.ReviewedAt,
		}
		if s := students[p.StudentID]; s != nil {
			item.Student = &core.UserSummary{
				UUID:  s.UUID,
				Name:  s.Name,
				Email: s.Email,
				Role:  s.Role,
			}
		}
		resp.ProposalList = append(resp.ProposalList, item)
	}
	return resp, nil
}

// Update 仅创建者可更新，非创建者与不存在同样返回 GigNotFound
func (g *gigImpl) Update(ctx context.Context, req *core.UpdateReq) error {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return code.UnLogin
	}

	data, err := g.gigStore.GetGigByUUID(ctx, req.GigUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.GigNotFound
		}
		logger.Errorf(ctx, "GetGigByUUID err: %+v", err)
		return code.QueryRecordErr.WithErr(err)
	}
	if data.CreatedBy != currentUser.ID {
		return code.GigNotFound
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.SkillsRequired != nil {
		updates["skills_required"] = *req.SkillsRequired
	}
	if req.EligibilityCriteria != nil {
		for _, c := range req.EligibilityCriteria {
			if err := c.Validate(); err != nil {
				return err
			}
		}
		criteria, err := json.Marshal(req.EligibilityCriteria)
		if err != nil {
			return code.ParamErr.WithErr(err)
		}
		updates["eligibility_criteria"] = criteria
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return code.ParamErr.WithMsgf("unknown status: %s", *req.Status)
		}
		updates["status"] = *req.Status
	}
	if req.ApplicationDeadline != nil {
		updates["application_deadline"] = *req.ApplicationDeadline
	}
	if req.MaxApplications != nil {
		if *req.MaxApplications <= 0 {
			return code.ParamErr.WithMsg("max_applications must be positive")
		}
		updates["max_applications"] = *req.MaxApplications
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()

	if err := g.gigStore.UpdateGig(ctx, data.ID, updates); err != nil {
		logger.Errorf(ctx, "UpdateGig err: %+v", err)
		return err
	}
	return nil
}
