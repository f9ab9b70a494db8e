package account

import (
	// 外部依赖
	"context"

	bcrypt "golang.org/x/crypto/bcrypt"

	// 内部引用
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	core "github.com/srinivas-tce/labgigs/pkg/core/account"
	auth "github.com/srinivas-tce/labgigs/pkg/middleware/auth"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
	repoAccount "github.com/srinivas-tce/labgigs/pkg/repo/account"
)

type accountImpl struct {
	accountStore repo.AccountRepo
}

func New() core.Service {
	return &accountImpl{accountStore: repoAccount.New()}
}

func NewWithStores(accountStore repo.AccountRepo) core.Service {
	return &accountImpl{accountStore: accountStore}
}

// Login 邮箱不存在与密码错误返回同一个错误，不泄露账号是否存在
func (a *accountImpl) Login(ctx context.Context, req *core.LoginReq) (*core.LoginResp, error) {
	user, err := a.accountStore.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, code.LoginFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, code.LoginFailed
	}

	token, expiresAt, err := auth.IssueToken(user)
	if err != nil {
		logger.Errorf(ctx, "IssueToken err: %+v", err)
		return nil, code.InternalErr.WithErr(err)
	}

	return &core.LoginResp{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        profile(user),
	}, nil
}

func (a *accountImpl) Profile(ctx context.Context) (*core.ProfileResp, error) {
	currentUser := auth.GetCurrentUser(ctx)
	if currentUser == nil {
		return nil, code.UnLogin
	}
	user, err := a.accountStore.GetUserByID(ctx, currentUser.ID)
	if err != nil {
		return nil, code.UserNotFound
	}
	return profile(user), nil
}

func profile(user *model.User) *core.ProfileResp {
	return &core.ProfileResp{
		UUID:           user.UUID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Department:     user.Department,
		Specialization: user.Specialization,
		Experience:     user.Experience,
		Thumbnail:      user.Thumbnail,
	}
}
