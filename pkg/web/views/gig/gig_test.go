package gig

import (
	// 外部依赖
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gin "github.com/gin-gonic/gin"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	coreGig "github.com/srinivas-tce/labgigs/pkg/core/gig"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeService struct {
	coreGig.Service
	createResp *coreGig.CreateResp
	createErr  error
	lastCreate *coreGig.CreateReq
}

func (f *fakeService) Create(_ context.Context, req *coreGig.CreateReq) (*coreGig.CreateResp, error) {
	f.lastCreate = req
	return f.createResp, f.createErr
}

func newRouter(svc coreGig.Service) *gin.Engine {
	g := gin.New()
	h := &Handle{svc: svc}
	g.POST("/api/v1/gig/create", h.Create)
	return g
}

func TestCreateView(t *testing.T) {
	want := uuid.NewV4()
	svc := &fakeService{createResp: &coreGig.CreateResp{UUID: want}}
	router := newRouter(svc)

	body := `{"lab_uuid":"` + uuid.NewV4().String() + `","title":"Line follower","description":"build it"}`
	req := httptest.NewRequest("POST", "/api/v1/gig/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Code int `json:"code"`
		Data struct {
			UUID uuid.UUID `json:"uuid"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, want, resp.Data.UUID)
	assert.Equal(t, "Line follower", svc.lastCreate.Title)
}

func TestCreateViewBadBody(t *testing.T) {
	router := newRouter(&fakeService{})

	// lab_uuid 缺失走参数绑定失败
	req := httptest.NewRequest("POST", "/api/v1/gig/create", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Code  int           `json:"code"`
		Error *common.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, code.ParamErr.Value(), resp.Code)
	require.NotNil(t, resp.Error)
}

func TestCreateViewServiceErr(t *testing.T) {
	router := newRouter(&fakeService{createErr: code.LabNotFound})

	body := `{"lab_uuid":"` + uuid.NewV4().String() + `","title":"x","description":"y"}`
	req := httptest.NewRequest("POST", "/api/v1/gig/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, code.LabNotFound.Value(), resp.Code)
}
