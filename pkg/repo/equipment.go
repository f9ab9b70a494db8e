package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

type EquipmentQuery struct {
	LabIDs   []int64
	Status   *model.EquipmentStatus
	Category *string
	Offset   int
	Limit    int
}

type RequestQuery struct {
	LabIDs []int64
	Status *model.RequestStatus
	Offset int
	Limit  int
}

type EquipmentRepo interface {
	Base

	CreateEquipment(ctx context.Context, data *model.Equipment) error
	GetEquipmentByUUID(ctx context.Context, id uuid.UUID) (*model.Equipment, error)
	GetEquipmentByID(ctx context.Context, id int64) (*model.Equipment, error)
	ListEquipment(ctx context.Context, q EquipmentQuery) ([]*model.Equipment, int64, error)
	// 条件更新 available -> requested，零行命中返回 EquipmentUnavailable，
	// 并发申请时只有一个赢家
	ReserveEquipment(ctx context.Context, id int64) error
	// data 只包含需要更新的字段
	UpdateEquipment(ctx context.Context, id int64, data map[string]any) error

	CreateRequest(ctx context.Context, data *model.EquipmentRequest) error
	GetRequestByUUID(ctx context.Context, id uuid.UUID) (*model.EquipmentRequest, error)
	// 条件更新 status='requested' 的行，零行命中返回 RequestDecided，
	// 申请只允许裁决一次
	DecideRequest(ctx context.Context, id int64, data map[string]any) error
	// 通过 equipment.lab_id 关联过滤可见范围
	ListRequests(ctx context.Context, q RequestQuery) ([]*model.EquipmentRequest, int64, error)
}
