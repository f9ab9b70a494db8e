package account

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
)

type accountImpl struct {
	*repo.BaseDB
}

func New() repo.AccountRepo {
	return &accountImpl{BaseDB: repo.NewBaseDB()}
}

func (a *accountImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	data := &model.User{}
	err := a.DBWithContext(ctx).Where("email = ?", email).First(data).Error
	return data, err
}

func (a *accountImpl) GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	data := &model.User{}
	err := a.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	return data, err
}

func (a *accountImpl) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	data := &model.User{}
	err := a.DBWithContext(ctx).Where("id = ?", id).First(data).Error
	return data, err
}

func (a *accountImpl) BatchGetUsers(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	out := make(map[int64]*model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var datas []*model.User
	if err := a.DBWithContext(ctx).Where("id IN ?", ids).Find(&datas).Error; err != nil {
		return nil, err
	}
	for _, u := range datas {
		out[u.ID] = u
	}
	return out, nil
}

func (a *accountImpl) GetLabByID(ctx context.Context, id int64) (*model.Lab, error) {
	data := &model.Lab{}
	err := a.DBWithContext(ctx).Where("id = ?", id).First(data).Error
	return data, err
}

func (a *accountImpl) GetLabByUUID(ctx context.Context, id uuid.UUID) (*model.Lab, error) {
	data := &model.Lab{}
	err := a.DBWithContext(ctx).Where("uuid = ?", id).First(data).Error
	return data, err
}

func (a *accountImpl) BatchGetLabs(ctx context.Context, ids []int64) (map[int64]*model.Lab, error) {
	out := make(map[int64]*model.Lab, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var datas []*model.Lab
	if err := a.DBWithContext(ctx).Where("id IN ?", ids).Find(&datas).Error; err != nil {
		return nil, err
	}
	for _, l := range datas {
		out[l.ID] = l
	}
	return out, nil
}

func (a *accountImpl) LabIDsForFacilitator(ctx context.Context, facilitatorID int64) ([]int64, error) {
	var ids []int64
	err := a.DBWithContext(ctx).Model(&model.FacilitatorLab{}).
		Where("facilitator_id = ?", facilitatorID).
		Pluck("lab_id", &ids).Error
	return ids, err
}

func (a *accountImpl) FacilitatorsForLab(ctx context.Context, labID int64) ([]*model.FacilitatorLab, error) {
	var datas []*model.FacilitatorLab
	err := a.DBWithContext(ctx).
		Where("lab_id = ?", labID).
		Order("assigned_at asc").
		Find(&datas).Error
	return datas, err
}
