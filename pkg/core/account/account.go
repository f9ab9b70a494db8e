package account

import (
	// 外部依赖
	"context"
)

// Service 账号相关业务接口
type Service interface {
	// Login 邮箱密码登录，返回访问令牌
	Login(ctx context.Context, req *LoginReq) (*LoginResp, error)
	// Profile 当前用户信息
	Profile(ctx context.Context) (*ProfileResp, error)
}
