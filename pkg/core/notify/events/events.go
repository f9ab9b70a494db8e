package events

import (
	// 外部依赖
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	ants "github.com/panjf2000/ants/v2"

	// 内部引用
	config "github.com/srinivas-tce/labgigs/internal/config"
	notify "github.com/srinivas-tce/labgigs/pkg/core/notify"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	redis "github.com/srinivas-tce/labgigs/pkg/middleware/redis"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
	notification "github.com/srinivas-tce/labgigs/pkg/repo/notification"
)

type emitter struct {
	store repo.NotificationRepo
	pool  *ants.Pool
}

var (
	e    *emitter
	once sync.Once
)

func New() notify.Notifier {
	once.Do(func() {
		pool, err := ants.NewPool(config.Global().Notify.PoolSize)
		if err != nil {
			logger.Fatalf(context.Background(), "init notify pool err: %+v", err)
		}
		e = &emitter{
			store: notification.NewNotificationRepo(),
			pool:  pool,
		}
	})
	return e
}

// Emit 异步落库并按用户维度广播，不阻塞调用方，失败只记日志。
// 调用方应在事务提交之后再触发
func (e *emitter) Emit(ctx context.Context, msgs ...*notify.Msg) {
	for _, msg := range msgs {
		m := msg
		if err := e.pool.Submit(func() { e.deliver(m) }); err != nil {
			logger.Errorf(ctx, "submit notify task err: %+v", err)
		}
	}
}

func (e *emitter) deliver(msg *notify.Msg) {
	timeout := time.Duration(config.Global().Notify.EmitTimeout) * time.Second
	// 不继承请求上下文，请求返回后投递仍要完成
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	data, err := json.Marshal(msg.Data)
	if err != nil {
		logger.Errorf(ctx, "marshal notify data err: %+v", err)
		data = nil
	}
	if err := e.store.CreateNotification(ctx, &model.Notification{
		UserID:  msg.UserID,
		Type:    string(msg.Type),
		Title:   msg.Title,
		Message: msg.Message,
		Data:    data,
		Status:  model.NotificationUnread,
	}); err != nil {
		logger.Errorf(ctx, "store notification err: %+v", err)
		return
	}

	e.publish(ctx, msg)
}

// publish 推送到用户订阅频道，没有 redis 时静默跳过
func (e *emitter) publish(ctx context.Context, msg *notify.Msg) {
	client := redis.GetClient()
	if client == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"type":    msg.Type,
		"title":   msg.Title,
		"message": msg.Message,
		"data":    msg.Data,
	})
	if err != nil {
		logger.Errorf(ctx, "marshal notify payload err: %+v", err)
		return
	}
	channel := fmt.Sprintf("notify:user:%s", msg.UserUUID)
	if err := client.Publish(ctx, channel, payload).Err(); err != nil {
		logger.Errorf(ctx, "publish notify err: %+v", err)
	}
}

func (e *emitter) Close() {
	e.pool.Release()
}
