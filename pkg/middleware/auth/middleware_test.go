package auth

import (
	// 外部依赖
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gin "github.com/gin-gonic/gin"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	gorm "gorm.io/gorm"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAccountRepo struct {
	repo.AccountRepo
	users map[uuid.UUID]*model.User
}

func (f *fakeAccountRepo) GetUserByUUID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newRouter(store repo.AccountRepo, roles ...common.Role) *gin.Engine {
	g := gin.New()
	handlers := []gin.HandlerFunc{Auth(store)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	group := g.Group("/", handlers...)
	group.GET("/me", func(ctx *gin.Context) {
		common.ReplyOk(ctx, GetCurrentUser(ctx))
	})
	return g
}

func respCode(t *testing.T, body []byte) int {
	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Code
}

func TestAuth(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 1, UUID: uuid.NewV4()},
		Name:      "Meera",
		Email:     "meera@example.com",
		Role:      common.Facilitator,
	}
	store := &fakeAccountRepo{users: map[uuid.UUID]*model.User{user.UUID: user}}
	router := newRouter(store)

	token, _, err := IssueToken(user)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, code.UnLogin.Value(), respCode(t, w.Body.Bytes()))
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Basic x y")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, code.LoginFormatErr.Value(), respCode(t, w.Body.Bytes()))
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, code.InvalidToken.Value(), respCode(t, w.Body.Bytes()))
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data model.UserData `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user.UUID, resp.Data.UUID)
		assert.Equal(t, common.Facilitator, resp.Data.Role)
	})

	t.Run("removed user", func(t *testing.T) {
		ghost := &model.User{BaseModel: model.BaseModel{ID: 2, UUID: uuid.NewV4()}}
		ghostToken, _, err := IssueToken(ghost)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+ghostToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, code.InvalidToken.Value(), respCode(t, w.Body.Bytes()))
	})
}

func TestRequireRole(t *testing.T) {
	facilitator := &model.User{BaseModel: model.BaseModel{ID: 1, UUID: uuid.NewV4()}, Role: common.Facilitator}
	student := &model.User{BaseModel: model.BaseModel{ID: 2, UUID: uuid.NewV4()}, Role: common.Student}
	store := &fakeAccountRepo{users: map[uuid.UUID]*model.User{
		facilitator.UUID: facilitator,
		student.UUID:     student,
	}}
	router := newRouter(store, common.Facilitator, common.FacilityManager)

	do := func(u *model.User) *httptest.ResponseRecorder {
		token, _, err := IssueToken(u)
		require.NoError(t, err)
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do(facilitator).Code)

	denied := do(student)
	assert.Equal(t, http.StatusForbidden, denied.Code)
	assert.Equal(t, code.RoleDenied.Value(), respCode(t, denied.Body.Bytes()))
}
