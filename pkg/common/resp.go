package common

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
)

type Error struct {
	Msg string `json:"msg"`
}

type Resp struct {
	Code  *code.Code `json:"code"`
	Data  any        `json:"data,omitempty"`
	Error *Error     `json:"error,omitempty"`
}

// ReplyOk 正常返回，data 可选
func ReplyOk(ctx *gin.Context, data ...any) {
	resp := &Resp{Code: code.Success}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(code.Success.HTTPStatus(), resp)
}

// ReplyErr 错误返回，msgs 追加到错误信息
func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	c := code.From(err)
	if len(msgs) > 0 {
		c = c.WithMsg(msgs[0])
	}
	ctx.JSON(c.HTTPStatus(), &Resp{
		Code:  c,
		Error: &Error{Msg: c.String()},
	})
}

// Reply 根据 err 决定成功或失败返回
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, data...)
}
