package migrate

import (
	"context"

	"github.com/srinivas-tce/labgigs/pkg/middleware/db"
	"github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	"github.com/srinivas-tce/labgigs/pkg/model"
)

func Table(ctx context.Context) error {
	d := db.DB().DBWithContext(ctx)
	models := []any{
		&model.User{},
		&model.Lab{},
		&model.FacilitatorLab{},
		&model.Gig{},
		&model.Proposal{},
		&model.Equipment{},
		&model.EquipmentRequest{},
		&model.Notification{},
	}
	for _, m := range models {
		if err := d.AutoMigrate(m); err != nil {
			logger.Errorf(ctx, "migrate table err: %+v", err)
			return err
		}
	}
	return nil
}
