package code

import (
	// 外部依赖
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Code 业务错误码，附带 HTTP 状态
type Code struct {
	code   int
	status int
	msg    string
	err    error
}

func New(code int, status int, msg string) *Code {
	return &Code{code: code, status: status, msg: msg}
}

func (c *Code) Error() string {
	return c.String()
}

func (c *Code) String() string {
	if c.err != nil {
		return fmt.Sprintf("%s: %s", c.msg, c.err.Error())
	}
	return c.msg
}

func (c *Code) Value() int {
	return c.code
}

func (c *Code) HTTPStatus() int {
	return c.status
}

// WithErr 附带底层错误，保持原码
func (c *Code) WithErr(err error) *Code {
	return &Code{code: c.code, status: c.status, msg: c.msg, err: err}
}

// WithMsg 覆盖描述信息，保持原码
func (c *Code) WithMsg(msg string) *Code {
	return &Code{code: c.code, status: c.status, msg: msg, err: c.err}
}

func (c *Code) WithMsgf(format string, args ...any) *Code {
	return c.WithMsg(fmt.Sprintf(format, args...))
}

func (c *Code) Unwrap() error {
	return c.err
}

// Is 按业务码比较，忽略包装的底层错误
func (c *Code) Is(target error) bool {
	t, ok := target.(*Code)
	return ok && t.code == c.code
}

func (c *Code) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(c.code)), nil
}

// From 将任意 error 规整为 *Code，未知错误归为 InternalErr
func From(err error) *Code {
	if err == nil {
		return Success
	}
	c := &Code{}
	if errors.As(err, &c) {
		return c
	}
	return InternalErr.WithErr(err)
}

var (
	Success = New(0, http.StatusOK, "success")

	// 参数与校验
	ParamErr    = New(40001, http.StatusBadRequest, "param error")
	CriteriaErr = New(40002, http.StatusBadRequest, "malformed eligibility criteria")
	DateErr     = New(40003, http.StatusBadRequest, "end date earlier than start date")

	// 状态冲突
	EquipmentUnavailable = New(40010, http.StatusBadRequest, "equipment not available")
	RequestDecided       = New(40011, http.StatusBadRequest, "equipment request already decided")
	ProposalDecided      = New(40012, http.StatusBadRequest, "proposal already reviewed")
	GigNotOpen           = New(40013, http.StatusBadRequest, "gig not open for applications")
	DeadlinePassed       = New(40014, http.StatusBadRequest, "application deadline passed")
	ApplicationsFull     = New(40015, http.StatusBadRequest, "gig reached max applications")
	NoFacilitator        = New(40016, http.StatusBadRequest, "no facilitator assigned to lab")

	// 登录鉴权
	UnLogin        = New(40100, http.StatusUnauthorized, "not logged in")
	InvalidToken   = New(40101, http.StatusUnauthorized, "invalid token")
	LoginFormatErr = New(40102, http.StatusUnauthorized, "authorization header format error")
	LoginFailed    = New(40103, http.StatusUnauthorized, "email or password incorrect")
	RoleDenied     = New(40300, http.StatusForbidden, "role not permitted")

	// 资源不存在。越权访问统一复用 404，避免泄露资源存在性
	RecordNotFound    = New(40400, http.StatusNotFound, "record not found")
	UserNotFound      = New(40401, http.StatusNotFound, "user not found")
	LabNotFound       = New(40402, http.StatusNotFound, "lab not found")
	GigNotFound       = New(40403, http.StatusNotFound, "gig not found")
	ProposalNotFound  = New(40404, http.StatusNotFound, "proposal not found")
	EquipmentNotFound = New(40405, http.StatusNotFound, "equipment not found")
	RequestNotFound   = New(40406, http.StatusNotFound, "equipment request not found")

	// 存储
	InternalErr    = New(50000, http.StatusInternalServerError, "internal error")
	CreateDataErr  = New(50001, http.StatusInternalServerError, "create data error")
	UpdateDataErr  = New(50002, http.StatusInternalServerError, "update data error")
	QueryRecordErr = New(50003, http.StatusInternalServerError, "query record error")
	DeleteDataErr  = New(50004, http.StatusInternalServerError, "delete data error")
)
