package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

// AccountRepo 用户、实验室与指派关系查询。
// 指派关系决定设施管理员的可见范围
type AccountRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	// 批量获取用户信息
	BatchGetUsers(ctx context.Context, ids []int64) (map[int64]*model.User, error)

	GetLabByID(ctx context.Context, id int64) (*model.Lab, error)
	GetLabByUUID(ctx context.Context, id uuid.UUID) (*model.Lab, error)
	BatchGetLabs(ctx context.Context, ids []int64) (map[int64]*model.Lab, error)

	// 设施管理员被指派的实验室 id 集合，空集合不是错误
	LabIDsForFacilitator(ctx context.Context, facilitatorID int64) ([]int64, error)
	// 实验室的全部指派记录，按指派时间升序
	FacilitatorsForLab(ctx context.Context, labID int64) ([]*model.FacilitatorLab, error)
}
