package notification

import (
	// 外部依赖
	"context"
	"net/http/httptest"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	// 内部引用
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	core "github.com/srinivas-tce/labgigs/pkg/core/notification"
	auth "github.com/srinivas-tce/labgigs/pkg/middleware/auth"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeNotificationRepo struct {
	items []*model.Notification
	read  map[int64][]uuid.UUID
}

func (f *fakeNotificationRepo) CreateNotification(_ context.Context, data *model.Notification) error {
	f.items = append(f.items, data)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID int64, _, _ int) ([]*model.Notification, int64, error) {
	out := []*model.Notification{}
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, userID int64, uuids []uuid.UUID) error {
	if f.read == nil {
		f.read = map[int64][]uuid.UUID{}
	}
	f.read[userID] = append(f.read[userID], uuids...)
	return nil
}

func userCtx(id int64) *gin.Context {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Set(auth.USERKEY, &model.UserData{ID: id, UUID: uuid.NewV4()})
	return ctx
}

func TestListNotifications(t *testing.T) {
	store := &fakeNotificationRepo{items: []*model.Notification{
		{BaseModel: model.BaseModel{ID: 1, UUID: uuid.NewV4(), CreatedAt: time.Now()}, UserID: 2, Title: "mine", Status: model.NotificationUnread},
		{BaseModel: model.BaseModel{ID: 2, UUID: uuid.NewV4(), CreatedAt: time.Now()}, UserID: 9, Title: "theirs", Status: model.NotificationUnread},
	}}
	svc := NewWithStores(store)

	resp, err := svc.List(userCtx(2), &core.ListReq{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "mine", resp.Data[0].Title)
	assert.Equal(t, int64(1), resp.Total)
}

func TestMarkRead(t *testing.T) {
	store := &fakeNotificationRepo{}
	svc := NewWithStores(store)

	target := uuid.NewV4()
	require.NoError(t, svc.MarkRead(userCtx(2), &core.MarkReadReq{UUIDs: []uuid.UUID{target}}))
	assert.Equal(t, []uuid.UUID{target}, store.read[2])

	anon, _ := gin.CreateTestContext(httptest.NewRecorder())
	err := svc.MarkRead(anon, &core.MarkReadReq{UUIDs: []uuid.UUID{target}})
	assert.ErrorIs(t, err, code.UnLogin)
}
