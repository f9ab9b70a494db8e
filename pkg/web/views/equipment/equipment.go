package equipment

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	coreEquipment "github.com/srinivas-tce/labgigs/pkg/core/equipment"
	equipmentImpl "github.com/srinivas-tce/labgigs/pkg/core/equipment/equipment"
)

type Handle struct{ svc coreEquipment.Service }

func NewHandle() *Handle { return &Handle{svc: equipmentImpl.New()} }

func (h *Handle) Create(ctx *gin.Context) {
	in := &coreEquipment.CreateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Create(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) List(ctx *gin.Context) {
	in := &coreEquipment.ListReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.List(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Request(ctx *gin.Context) {
	in := &coreEquipment.RequestReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Request(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) ListRequests(ctx *gin.Context) {
	in := &coreEquipment.ListRequestsReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.ListRequests(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Decide(ctx *gin.Context) {
	in := &coreEquipment.DecideReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Decide(ctx, in))
}
