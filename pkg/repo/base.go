package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	db "github.com/srinivas-tce/labgigs/pkg/middleware/db"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
)

// Base 所有仓储的公共能力：事务与 uuid -> 自增 id 映射
type Base interface {
	ExecTx(ctx context.Context, fn func(ctx context.Context) error) error
	UUID2ID(ctx context.Context, m any, uuids ...uuid.UUID) map[uuid.UUID]int64
}

type BaseDB struct {
	*db.Datastore
}

func NewBaseDB() *BaseDB {
	return &BaseDB{Datastore: db.DB()}
}

func (b *BaseDB) UUID2ID(ctx context.Context, m any, uuids ...uuid.UUID) map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64, len(uuids))
	if len(uuids) == 0 {
		return out
	}

	type row struct {
		ID   int64
		UUID uuid.UUID
	}
	rows := make([]row, 0, len(uuids))
	if err := b.DBWithContext(ctx).Model(m).
		Select("id", "uuid").
		Where("uuid IN ?", uuids).
		Find(&rows).Error; err != nil {
		logger.Errorf(ctx, "UUID2ID query err: %+v", err)
		return out
	}
	for _, r := range rows {
		out[r.UUID] = r.ID
	}
	return out
}
