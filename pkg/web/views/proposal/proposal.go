package proposal

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	coreProposal "github.com/srinivas-tce/labgigs/pkg/core/proposal"
	proposalImpl "github.com/srinivas-tce/labgigs/pkg/core/proposal/proposal"
)

type Handle struct{ svc coreProposal.Service }

func NewHandle() *Handle { return &Handle{svc: proposalImpl.New()} }

func (h *Handle) Submit(ctx *gin.Context) {
	in := &coreProposal.SubmitReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Submit(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Review(ctx *gin.Context) {
	in := &coreProposal.ReviewReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.Review(ctx, in))
}

func (h *Handle) List(ctx *gin.Context) {
	in := &coreProposal.ListMineReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.ListMine(ctx, in)
	common.Reply(ctx, err, resp)
}
