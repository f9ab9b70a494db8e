package gig

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	coreGig "github.com/srinivas-tce/labgigs/pkg/core/gig"
	gigImpl "github.com/srinivas-tce/labgigs/pkg/core/gig/gig"
)

type Handle struct{ svc coreGig.Service }

func NewHandle() *Handle { return &Handle{svc: gigImpl.New()} }

func (h *Handle) Create(ctx *gin.Context) {
	in := &coreGig.CreateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Create(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) List(ctx *gin.Context) {
	in := &coreGig.ListReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.List(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Info(ctx *gin.Context) {
	in := &coreGig.InfoReq{}
	if err := ctx.ShouldBindUri(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Info(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Update(ctx *gin.Context) {
	in := &coreGig.UpdateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Update(ctx, in))
}
