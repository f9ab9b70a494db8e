package equipment

import (
	// 外部依赖
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	gorm "gorm.io/gorm"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	core "github.com/srinivas-tce/labgigs/pkg/core/equipment"
	notify "github.com/srinivas-tce/labgigs/pkg/core/notify"
	events "github.com/srinivas-tce/labgigs/pkg/core/notify/events"
	auth "github.com/srinivas-tce/labgigs/pkg/middleware/auth"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
	repoAccount "github.com/srinivas-tce/labgigs/pkg/repo/account"
	repoEquipment "github.com/srinivas-tce/labgigs/pkg/repo/equipment"
	repoProposal "github.com/srinivas-tce/labgigs/pkg/repo/proposal"
	utils "github.com/srinivas-tce/labgigs/pkg/utils"
)

type equipmentImpl struct {
	equipmentStore repo.EquipmentRepo
	proposalStore  repo.ProposalRepo
	accountStore   repo.AccountRepo
	notifier       notify.Notifier
}

func New() core.Service {
	return &equipmentImpl{
		equipmentStore: repoEquipment.NewEquipmentRepo(),
		proposalStore:  repoProposal.NewProposalRepo(),
		accountStore:   repoAccount.New(),
		notifier:       events.New(),
	}
}

func NewWithStores(equipmentStore repo.EquipmentRepo, proposalStore repo.ProposalRepo, accountStore repo.AccountRepo, notifier notify.Notifier) core.Service {
	return &equipmentImpl{
		equipmentStore: equipmentStore,
		proposalStore:  proposalStore,
		accountStore:   accountStore,
		notifier:       notifier,
	}
}

// Create 登记设备，登记者必须已被指派到目标实验室
func (e *equipmentImpl) Create(ctx context.Context, req *core.CreateReq) (*core.CreateResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}
	if !currentUser.Role.IsFacilitator() {
		return nil, code.RoleDenied
	}

	lab, err := e.accountStore.GetLabByUUID(ctx, req.LabUUID)
	if err != nil {
		return nil, code.LabNotFound
	}
	labIDs, err := e.accountStore.LabIDsForFacilitator(ctx, currentUser.ID)
	if err != nil {
		logger.Errorf(ctx, "LabIDsForFacilitator err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	if !slices.Contains(labIDs, lab.ID) {
		return nil, code.LabNotFound
	}

	data := &model.Equipment{
		LabID:        lab.ID,
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Category:     req.Category,
		Status:       model.EquipmentAvailable,
		Condition:    req.Condition,
		PurchaseDate: req.PurchaseDate,
		Cost:         req.Cost,
		ImageURL:     req.ImageURL,
	}
	if err := e.equipmentStore.CreateEquipment(ctx, data); err != nil {
		logger.Errorf(ctx, "CreateEquipment err: %+v", err)
		return nil, err
	}
	return &core.CreateResp{UUID: data.UUID}, nil
}

// List 按指派关系过滤可见范围
func (e *equipmentImpl) List(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.EquipmentDetail], error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	req.Normalize()
	resp := &common.PageResp[[]*core.EquipmentDetail]{
		Data:     []*core.EquipmentDetail{},
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	labIDs, err := e.accountStore.LabIDsForFacilitator(ctx, currentUser.ID)
	if err != nil {
		logger.Errorf(ctx, "LabIDsForFacilitator err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	if len(labIDs) == 0 {
		return resp, nil
	}

	items, total, err := e.equipmentStore.ListEquipment(ctx, repo.EquipmentQuery{
		LabIDs:   labIDs,
		Status:   req.Status,
		Category: req.Category,
		Offset:   req.Offest(),
		Limit:    req.PageSize,
	})
	if err != nil {
		logger.Errorf(ctx, "ListEquipment err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	resp.Total = total
	if len(items) == 0 {
		return resp, nil
	}

	labs, err := e.accountStore.BatchGetLabs(ctx, utils.FilterSlice(items, func(item *model.Equipment) (int64, bool) {
		return item.LabID, true
	}))
	if err != nil {
		logger.Errorf(ctx, "BatchGetLabs err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}

	for _, item := range items {
		resp.Data = append(resp.Data, e.buildDetail(item, labs[item.LabID]))
	}
	return resp, nil
}

func (e *equipmentImpl) buildDetail(item *model.Equipment, lab *model.Lab) *core.EquipmentDetail {
	detail := &core.EquipmentDetail{
		UUID:         item.UUID,
		Name:         item.Name,
		SerialNumber: item.SerialNumber,
		Category:     item.Category,
		Status:       item.Status,
		Condition:    item.Condition,
		PurchaseDate: item.PurchaseDate,
		Cost:         item.Cost,
		ImageURL:     item.ImageURL,
	}
	if lab != nil {
		detail.Lab = &core.LabSummary{UUID: lab.UUID, Name: lab.Name}
	}
	return detail
}

// Request 学生申请占用设备：
// - 日期与数量先行校验，非法参数不触发任何写入
// - 设备所在实验室必须有指派的设施管理员，否则申请无人裁决
// - 占用用条件更新抢占，输掉竞争返回 EquipmentUnavailable
// - 请求落库与设备占用在同一事务内
// 事务提交后通知该实验室全部设施管理员，最早被指派者记为处理人
func (e *equipmentImpl) Request(ctx context.Context, req *core.RequestReq) (*core.RequestResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}
	if currentUser.Role != common.Student {
		return nil, code.RoleDenied
	}

	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, code.DateErr
	}

	equipment, err := e.equipmentStore.GetEquipmentByUUID(ctx, req.EquipmentUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.EquipmentNotFound
		}
		logger.Errorf(ctx, "GetEquipmentByUUID err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}

	assignments, err := e.accountStore.FacilitatorsForLab(ctx, equipment.LabID)
	if err != nil {
		logger.Errorf(ctx, "FacilitatorsForLab err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	if len(assignments) == 0 {
		return nil, code.NoFacilitator
	}

	var proposalID *int64
	if req.ProposalUUID != nil {
		proposal, err := e.proposalStore.GetProposalByUUID(ctx, *req.ProposalUUID)
		if err != nil || proposal.StudentID != currentUser.ID {
			return nil, code.ProposalNotFound
		}
		proposalID = &proposal.ID
	}

	data := &model.EquipmentRequest{
		ProposalID:    proposalID,
		EquipmentID:   equipment.ID,
		StudentID:     currentUser.ID,
		FacilitatorID: assignments[0].FacilitatorID,
		Quantity:      req.Quantity,
		Purpose:       req.Purpose,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        model.RequestRequested,
	}
	if err := e.equipmentStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := e.equipmentStore.ReserveEquipment(txCtx, equipment.ID); err != nil {
			return err
		}
		return e.equipmentStore.CreateRequest(txCtx, data)
	}); err != nil {
		return nil, err
	}

	facilitators, err := e.accountStore.BatchGetUsers(ctx, utils.FilterSlice(assignments, func(a *model.FacilitatorLab) (int64, bool) {
		return a.FacilitatorID, true
	}))
	if err != nil {
		logger.Errorf(ctx, "BatchGetUsers err: %+v", err)
		return &core.RequestResp{UUID: data.UUID, Status: data.Status}, nil
	}
	msgs := make([]*notify.Msg, 0, len(facilitators))
	for _, f := range facilitators {
		msgs = append(msgs, &notify.Msg{
			UserID:   f.ID,
			UserUUID: f.UUID,
			Type:     notify.EquipmentRequested,
			Title:    "Equipment Requested",
			Message:  fmt.Sprintf("%s requested %s", currentUser.Name, equipment.Name),
			Data: map[string]any{
				"request_uuid":   data.UUID,
				"equipment_uuid": equipment.UUID,
				"student_uuid":   currentUser.UUID,
			},
		})
	}
	e.notifier.Emit(ctx, msgs...)

	return &core.RequestResp{UUID: data.UUID, Status: data.Status}, nil
}

// ListRequests 列出可见范围内的设备申请
func (e *equipmentImpl) ListRequests(ctx context.Context, req *core.ListRequestsReq) (*common.PageResp[[]*core.RequestDetail], error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}

	req.Normalize()
	resp := &common.PageResp[[]*core.RequestDetail]{
		Data:     []*core.RequestDetail{},
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	labIDs, err := e.accountStore.LabIDsForFacilitator(ctx, currentUser.ID)
	if err != nil {
		logger.Errorf(ctx, "LabIDsForFacilitator err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	if len(labIDs) == 0 {
		return resp, nil
	}

	requests, total, err := e.equipmentStore.ListRequests(ctx, repo.RequestQuery{
		LabIDs: labIDs,
		Status: req.Status,
		Offset: req.Offest(),
		Limit:  req.PageSize,
	})
	if err != nil {
		logger.Errorf(ctx, "ListRequests err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	resp.Total = total
	if len(requests) == 0 {
		return resp, nil
	}

	students, err := e.accountStore.BatchGetUsers(ctx, utils.FilterSlice(requests, func(r *model.EquipmentRequest) (int64, bool) {
		return r.StudentID, true
	}))
	if err != nil {
		logger.Errorf(ctx, "BatchGetUsers err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}

	equipments := map[int64]*model.Equipment{}
	for _, r := range requests {
		if _, ok := equipments[r.EquipmentID]; ok {
			continue
		}
		item, err := e.equipmentStore.GetEquipmentByID(ctx, r.EquipmentID)
		if err != nil {
			logger.Errorf(ctx, "GetEquipmentByID err: %+v", err)
			continue
		}
		equipments[r.EquipmentID] = item
	}

	for _, r := range requests {
		detail := &core.RequestDetail{
			UUID:             r.UUID,
			Quantity:         r.Quantity,
			Purpose:          r.Purpose,
			StartDate:        r.StartDate,
			EndDate:          r.EndDate,
			Status:           r.Status,
			ApprovalComments: r.ApprovalComments,
			ApprovedAt:       r.ApprovedAt,
			CreatedAt:        r.CreatedAt,
		}
		if item := equipments[r.EquipmentID]; item != nil {
			detail.Equipment = e.buildDetail(item, nil)
		}
		if s := students[r.StudentID]; s != nil {
			detail.Student = &core.UserSummary{UUID: s.UUID, Name: s.Name, Email: s.Email}
		}
		resp.Data = append(resp.Data, detail)
	}
	return resp, nil
}

// Decide 裁决设备申请。裁决者必须被指派到设备所在实验室，
// 否则与申请不存在同样返回 RequestNotFound。
// 裁决用条件更新抢占，重复裁决返回 RequestDecided。
// 批准把设备置为 allocated 并记在学生名下，驳回释放设备
func (e *equipmentImpl) Decide(ctx context.Context, req *core.DecideReq) error {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return code.UnLogin
	}
	if req.Status != model.RequestApproved && req.Status != model.RequestRejected {
		return code.ParamErr.WithMsgf("unknown decision: %s", req.Status)
	}

	request, err := e.equipmentStore.GetRequestByUUID(ctx, req.RequestUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.RequestNotFound
		}
		logger.Errorf(ctx, "GetRequestByUUID err: %+v", err)
		return code.QueryRecordErr.WithErr(err)
	}

	equipment, err := e.equipmentStore.GetEquipmentByID(ctx, request.EquipmentID)
	if err != nil {
		logger.Errorf(ctx, "GetEquipmentByID err: %+v", err)
		return code.QueryRecordErr.WithErr(err)
	}
	labIDs, err := e.accountStore.LabIDsForFacilitator(ctx, currentUser.ID)
	if err != nil {
		logger.Errorf(ctx, "LabIDsForFacilitator err: %+v", err)
		return code.QueryRecordErr.WithErr(err)
	}
	if !slices.Contains(labIDs, equipment.LabID) {
		return code.RequestNotFound
	}

	now := time.Now().UTC()
	decision := map[string]any{
		"status":      req.Status,
		"approved_at": now,
		"updated_at":  now,
	}
	if req.ApprovalComments != nil {
		decision["approval_comments"] = *req.ApprovalComments
	}
	equipmentUpdates := map[string]any{
		"status":      model.EquipmentAvailable,
		"assigned_to": nil,
		"updated_at":  now,
	}
	if req.Status == model.RequestApproved {
		equipmentUpdates["status"] = model.EquipmentAllocated
		equipmentUpdates["assigned_to"] = request.StudentID
	}

	if err := e.equipmentStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := e.equipmentStore.DecideRequest(txCtx, request.ID, decision); err != nil {
			return err
		}
		return e.equipmentStore.UpdateEquipment(txCtx, equipment.ID, equipmentUpdates)
	}); err != nil {
		return err
	}

	student, err := e.accountStore.GetUserByID(ctx, request.StudentID)
	if err != nil {
		logger.Errorf(ctx, "GetUserByID err: %+v", err)
		return nil
	}
	msg := &notify.Msg{
		UserID:   student.ID,
		UserUUID: student.UUID,
		Type:     notify.EquipmentDecided,
		Title:    fmt.Sprintf("Equipment Request %s", req.Status),
		Message:  fmt.Sprintf("Your request for %s is %s", equipment.Name, req.Status),
		Data: map[string]any{
			"request_uuid":   request.UUID,
			"equipment_uuid": equipment.UUID,
			"status":         req.Status,
		},
	}
	if req.ApprovalComments != nil {
		msg.Data["approval_comments"] = *req.ApprovalComments
	}
	e.notifier.Emit(ctx, msg)
	return nil
}
