package proposal

import (
	// 外部依赖
	"context"
	"errors"
	"fmt"
	"time"

	gorm "gorm.io/gorm"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	notify "github.com/srinivas-tce/labgigs/pkg/core/notify"
	events "github.com/srinivas-tce/labgigs/pkg/core/notify/events"
	core "github.com/srinivas-tce/labgigs/pkg/core/proposal"
	auth "github.com/srinivas-tce/labgigs/pkg/middleware/auth"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
	repoAccount "github.com/srinivas-tce/labgigs/pkg/repo/account"
	repoGig "github.com/srinivas-tce/labgigs/pkg/repo/gig"
	repoProposal "github.com/srinivas-tce/labgigs/pkg/repo/proposal"
)

type proposalImpl struct {
	proposalStore repo.ProposalRepo
	gigStore      repo.GigRepo
	accountStore  repo.AccountRepo
	notifier      notify.Notifier
}

func New() core.Service {
	return &proposalImpl{
		proposalStore: repoProposal.NewProposalRepo(),
		gigStore:      repoGig.NewGigRepo(),
		accountStore:  repoAccount.New(),
		notifier:      events.New(),
	}
}

func NewWithStores(proposalStore repo.ProposalRepo, gigStore repo.GigRepo, accountStore repo.AccountRepo, notifier notify.Notifier) core.Service {
	return &proposalImpl{
		proposalStore: proposalStore,
		gigStore:      gigStore,
		accountStore:  accountStore,
		notifier:      notifier,
	}
}

// Submit 提交提案：
// - 任务必须存在且处于 open
// - 截止时间已过拒绝提交
// - 已提交数达到上限拒绝提交
// 同一学生重复提交不做拦截，以最新一份为准由审批侧裁决
func (p *proposalImpl) Submit(ctx context.Context, req *core.SubmitReq) (*core.SubmitResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}
	if currentUser.Role != common.Student {
		return nil, code.RoleDenied
	}

	gig, err := p.gigStore.GetGigByUUID(ctx, req.GigUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.GigNotFound
		}
		logger.Errorf(ctx, "GetGigByUUID err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	if gig.Status != model.GigOpen {
		return nil, code.GigNotOpen
	}

	now := time.Now().UTC()
	if gig.ApplicationDeadline != nil && now.After(*gig.ApplicationDeadline) {
		return nil, code.DeadlinePassed
	}

	count, err := p.proposalStore.CountForGig(ctx, gig.ID)
	if err != nil {
		logger.Errorf(ctx, "CountForGig err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	if count >= int64(gig.MaxApplications) {
		return nil, code.ApplicationsFull
	}

	data := &model.Proposal{
		GigID:            gig.ID,
		LabID:            gig.LabID,
		StudentID:        currentUser.ID,
		Title:            req.Title,
		ProblemStatement: req.ProblemStatement,
		Approach:         req.Approach,
		ExpectedOutcome:  req.ExpectedOutcome,
		Timeline:         req.Timeline,
		EquipmentNeeded:  req.EquipmentNeeded,
		GithubLink:       req.GithubLink,
		AttachmentURL:    req.AttachmentURL,
		Status:           model.ProposalSubmitted,
		SubmittedAt:      now,
	}
	if err := p.proposalStore.CreateProposal(ctx, data); err != nil {
		logger.Errorf(ctx, "CreateProposal err: %+v", err)
		return nil, err
	}

	return &core.SubmitResp{
		UUID:        data.UUID,
		Status:      data.Status,
		SubmittedAt: data.SubmittedAt,
	}, nil
}

// Review 审批提案。只有父任务的创建者能审批，
// 其余调用方与提案不存在同样返回 ProposalNotFound。
// 状态机：submitted -> under_review -> approved/rejected，
// submitted 也可直接进入终态，终态不可再变更
func (p *proposalImpl) Review(ctx context.Context, req *core.ReviewReq) error {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return code.UnLogin
	}

	data, err := p.proposalStore.GetProposalByUUID(ctx, req.ProposalUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ProposalNotFound
		}
		logger.Errorf(ctx, "GetProposalByUUID err: %+v", err)
		return code.QueryRecordErr.WithErr(err)
	}

	gig, err := p.gigStore.GetGigByID(ctx, data.GigID)
	if err != nil {
		logger.Errorf(ctx, "GetGigByID err: %+v", err)
		return code.QueryRecordErr.WithErr(err)
	}
	if gig.CreatedBy != currentUser.ID {
		return code.ProposalNotFound
	}

	if data.Status.Terminal() {
		return code.ProposalDecided
	}
	switch req.Status {
	case model.ProposalUnderReview:
		if data.Status != model.ProposalSubmitted {
			return code.ParamErr.WithMsgf("cannot move %s to under_review", data.Status)
		}
	case model.ProposalApproved, model.ProposalRejected:
		if data.Status != model.ProposalSubmitted && data.Status != model.ProposalUnderReview {
			return code.ParamErr.WithMsgf("cannot move %s to %s", data.Status, req.Status)
		}
	default:
		return code.ParamErr.WithMsgf("unknown review status: %s", req.Status)
	}

	updates := map[string]any{
		"status":     req.Status,
		"updated_at": time.Now().UTC(),
	}
	if req.ReviewComments != nil {
		updates["review_comments"] = *req.ReviewComments
	}
	if req.Score != nil {
		updates["score"] = *req.Score
	}
	if req.Status.Terminal() {
		updates["reviewed_at"] = time.Now().UTC()
	}

	if err := p.proposalStore.ExecTx(ctx, func(txCtx context.Context) error {
		return p.proposalStore.UpdateProposal(txCtx, data.ID, updates)
	}); err != nil {
		logger.Errorf(ctx, "review proposal tx err: %+v", err)
		return err
	}

	// 事务提交后再通知，失败的审批不产生通知
	student, err := p.accountStore.GetUserByID(ctx, data.StudentID)
	if err != nil {
		logger.Errorf(ctx, "GetUserByID err: %+v", err)
		return nil
	}
	msg := &notify.Msg{
		UserID:   student.ID,
		UserUUID: student.UUID,
		Type:     notify.ProposalReviewed,
		Title:    fmt.Sprintf("Proposal %s", req.Status),
		Message:  fmt.Sprintf("Your proposal %q for gig %q is now %s", data.Title, gig.Title, req.Status),
		Data: map[string]any{
			"proposal_uuid": data.UUID,
			"gig_uuid":      gig.UUID,
			"status":        req.Status,
		},
	}
	if req.ReviewComments != nil {
		msg.Data["review_comments"] = *req.ReviewComments
	}
	p.notifier.Emit(ctx, msg)
	return nil
}

// ListMine 当前学生的提案列表，附带所属任务概要
func (p *proposalImpl) ListMine(ctx context.Context, req *core.ListMineReq) (*common.PageResp[[]*core.ProposalDetail], error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	req.Normalize()
	resp := &common.PageResp[[]*core.ProposalDetail]{
		Data:     []*core.ProposalDetail{},
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	proposals, total, err := p.proposalStore.ListByStudent(ctx, currentUser.ID, req.Offest(), req.PageSize)
	if err != nil {
		logger.Errorf(ctx, "ListByStudent err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	resp.Total = total

	briefs := map[int64]*core.GigBrief{}
	for _, item := range proposals {
		detail := &core.ProposalDetail{
			UUID:             item.UUID,
			Title:            item.Title,
			ProblemStatement: item.ProblemStatement,
			Approach:         item.Approach,
			ExpectedOutcome:  item.ExpectedOutcome,
			Timeline:         item.Timeline,
			EquipmentNeeded:  item.EquipmentNeeded,
			GithubLink:       item.GithubLink,
			AttachmentURL:    item.AttachmentURL,
			Status:           item.Status,
			ReviewComments:   item.ReviewComments,
			Score:            item.Score,
			SubmittedAt:      item.SubmittedAt,
			ReviewedAt:       item.ReviewedAt,
		}
		if brief, ok := briefs[item.GigID]; ok {
			detail.Gig = brief
		} else if gig, err := p.gigStore.GetGigByID(ctx, item.GigID); err == nil {
			brief = &core.GigBrief{UUID: gig.UUID, Title: gig.Title, Status: gig.Status}
			briefs[item.GigID] = brief
			detail.Gig = brief
		}
		resp.Data = append(resp.Data, detail)
	}
	return resp, nil
}
