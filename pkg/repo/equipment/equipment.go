package equipment

import (
	// 外部依赖
	"context"

	// 内部引用
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
)

type equipmentImpl struct {
	*repo.BaseDB
}

func NewEquipmentRepo() repo.EquipmentRepo {
	return &equipmentImpl{BaseDB: repo.NewBaseDB()}
}

func (e *equipmentImpl) CreateEquipment(ctx context.Context, data *model.Equipment) error {
	if err := e.DBWithContext(ctx).Create(data).Error; err != nil {
		logger.Errorf(ctx, "CreateEquipment err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (e *equipmentImpl) GetEquipmentByUUID(ctx context.Context, id uuid.UUID) (*model.Equipment, error) {
	data := &model.Equipment{}
	err := e.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	return data, err
}

func (e *equipmentImpl) GetEquipmentByID(ctx context.Context, id int64) (*model.Equipment, error) {
	data := &model.Equipment{}
	err := e.DBWithContext(ctx).Where("id = ?", id).First(data).Error
	return data, err
}

func (e *equipmentImpl) ListEquipment(ctx context.Context, q repo.EquipmentQuery) ([]*model.Equipment, int64, error) {
	if len(q.LabIDs) == 0 {
		return nil, 0, nil
	}

	db := e.DBWithContext(ctx).Model(&model.Equipment{}).Where("lab_id IN ?", q.LabIDs)
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}
	if q.Category != nil && *q.Category != "" {
		db = db.Where("category = ?", *q.Category)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	var datas []*model.Equipment
	if err := db.Order("id desc").Offset(q.Offset).Limit(q.Limit).Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}

// ReserveEquipment 单条条件更新完成占用，避免先查后改的竞态
func (e *equipmentImpl) ReserveEquipment(ctx context.Context, id int64) error {
	res := e.DBWithContext(ctx).Model(&model.Equipment{}).
		Where("id = ? AND status = ?", id, model.EquipmentAvailable).
		Update("status", model.EquipmentRequested)
	if res.Error != nil {
		logger.Errorf(ctx, "ReserveEquipment err: %+v", res.Error)
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.EquipmentUnavailable
	}
	return nil
}

func (e *equipmentImpl) UpdateEquipment(ctx context.Context, id int64, data map[string]any) error {
	if err := e.DBWithContext(ctx).Model(&model.Equipment{}).
		Where("id = ?", id).
		Updates(data).Error; err != nil {
		logger.Errorf(ctx, "UpdateEquipment err: %+v", err)
		return code.UpdateDataErr.WithErr(err)
	}
	return nil
}

func (e *equipmentImpl) CreateRequest(ctx context.Context, data *model.EquipmentRequest) error {
	if err := e.DBWithContext(ctx).Create(data).Error; err != nil {
		logger.Errorf(ctx, "CreateRequest err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (e *equipmentImpl) GetRequestByUUID(ctx context.Context, id uuid.UUID) (*model.EquipmentRequest, error) {
	data := &model.EquipmentRequest{}
	err := e.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	return data, err
}

// DecideRequest 只允许裁决一次，条件更新 status='requested' 的行
func (e *equipmentImpl) DecideRequest(ctx context.Context, id int64, data map[string]any) error {
	res := e.DBWithContext(ctx).Model(&model.EquipmentRequest{}).
		Where("id = ? AND status = ?", id, model.RequestRequested).
		Updates(data)
	if res.Error != nil {
		logger.Errorf(ctx, "DecideRequest err: %+v", res.Error)
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RequestDecided
	}
	return nil
}

func (e *equipmentImpl) ListRequests(ctx context.Context, q repo.RequestQuery) ([]*model.EquipmentRequest, int64, error) {
	if len(q.LabIDs) == 0 {
		return nil, 0, nil
	}

	db := e.DBWithContext(ctx).Model(&model.EquipmentRequest{}).
		Joins("JOIN equipment ON equipment.id = equipment_request.equipment_id").
		Where("equipment.lab_id IN ?", q.LabIDs)
	if q.Status != nil {
		db = db.Where("equipment_request.status = ?", *q.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	var datas []*model.EquipmentRequest
	if err := db.Order("equipment_request.id desc").
		Offset(q.Offset).Limit(q.Limit).
		Find(&datas).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return datas, total, nil
}
