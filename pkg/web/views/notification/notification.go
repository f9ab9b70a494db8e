package notification

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	coreNotification "github.com/srinivas-tce/labgigs/pkg/core/notification"
	notificationImpl "github.com/srinivas-tce/labgigs/pkg/core/notification/notification"
)

type Handle struct{ svc coreNotification.Service }

func NewHandle() *Handle { return &Handle{svc: notificationImpl.New()} }

func (h *Handle) List(ctx *gin.Context) {
	in := &coreNotification.ListReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.List(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) MarkRead(ctx *gin.Context) {
	in := &coreNotification.MarkReadReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.MarkRead(ctx, in))
}
