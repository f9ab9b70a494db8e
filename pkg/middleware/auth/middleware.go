package auth

import (
	// 外部依赖
	"context"
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
	account "github.com/srinivas-tce/labgigs/pkg/repo/account"
	utils "github.com/srinivas-tce/labgigs/pkg/utils"
)

var USERKEY = "AUTH_USER_KEY"

func AuthWeb() func(ctx *gin.Context) {
	return Auth(account.New())
}

// Auth 校验令牌并把已验证的调用者身份注入请求上下文。
// 身份只来源于令牌，任何请求参数里的身份字段都不作数
func Auth(store repo.AccountRepo) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		cookie, _ := ctx.Cookie("access_token")
		authHeader := ctx.GetHeader("Authorization")
		queryToken := ctx.Query("access_token")
		authHeader = utils.Or(cookie, queryToken, authHeader)
		if authHeader == "" {
			abort(ctx, code.UnLogin)
			return
		}

		tokenStr := authHeader
		if strings.Contains(authHeader, " ") {
			tokens := strings.Split(authHeader, " ")
			if len(tokens) != 2 || tokens[0] != "Bearer" {
				abort(ctx, code.LoginFormatErr)
				return
			}
			tokenStr = tokens[1]
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			abort(ctx, code.InvalidToken)
			return
		}

		// 令牌有效期内用户可能被移除或换角色，以库里为准
		user, err := store.GetUserByUUID(ctx, claims.UserUUID)
		if err != nil {
			logger.Errorf(ctx, "auth lookup user err: %+v", err)
			abort(ctx, code.InvalidToken)
			return
		}

		ctx.Set(USERKEY, &model.UserData{
			ID:    user.ID,
			UUID:  user.UUID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
		ctx.Next()
	}
}

// RequireRole 角色闸门，需在 Auth 之后挂载
func RequireRole(roles ...common.Role) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		user := GetCurrentUser(ctx)
		if user == nil {
			abort(ctx, code.UnLogin)
			return
		}
		for _, r := range roles {
			if user.Role == r {
				ctx.Next()
				return
			}
		}
		abort(ctx, code.RoleDenied)
	}
}

func abort(ctx *gin.Context, c *code.Code) {
	status := c.HTTPStatus()
	if status == 0 {
		status = http.StatusUnauthorized
	}
	ctx.JSON(status, &common.Resp{
		Code:  c,
		Error: &common.Error{Msg: c.String()},
	})
	ctx.Abort()
}

// GetCurrentUser 从上下文中获取当前用户信息
func GetCurrentUser(ctx context.Context) *model.UserData {
	gCtx, ok := ctx.(*gin.Context)
	if !ok {
		return nil
	}

	user, exists := gCtx.Get(USERKEY)
	if !exists {
		return nil
	}
	return user.(*model.UserData)
}
