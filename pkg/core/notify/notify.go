package notify

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
)

type Action string

const (
	ProposalReviewed   Action = "proposal-reviewed"
	EquipmentRequested Action = "equipment-requested"
	EquipmentDecided   Action = "equipment-decided"
)

// Msg 一条待投递的站内通知
type Msg struct {
	UserID   int64
	UserUUID uuid.UUID
	Type     Action
	Title    string
	Message  string
	Data     map[string]any
}

// Notifier 投递为尽力而为，失败只记日志不回传给业务调用方
type Notifier interface {
	Emit(ctx context.Context, msgs ...*Msg)
	Close()
}
