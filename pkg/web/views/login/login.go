package login

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	coreAccount "github.com/srinivas-tce/labgigs/pkg/core/account"
	accountImpl "github.com/srinivas-tce/labgigs/pkg/core/account/account"
)

type Handle struct{ svc coreAccount.Service }

func NewHandle() *Handle { return &Handle{svc: accountImpl.New()} }

func (h *Handle) Login(ctx *gin.Context) {
	in := &coreAccount.LoginReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.LoginFormatErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Login(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Profile(ctx *gin.Context) {
	resp, err := h.svc.Profile(ctx)
	common.Reply(ctx, err, resp)
}
