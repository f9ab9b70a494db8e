package migrate

import (
	// 外部依赖
	"context"
	"time"

	bcrypt "golang.org/x/crypto/bcrypt"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	db "github.com/srinivas-tce/labgigs/pkg/middleware/db"
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

// Seed 写入演示数据，库里已有用户时跳过
func Seed(ctx context.Context) error {
	d := db.DB().DBWithContext(ctx)

	var count int64
	if err := d.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Infof(ctx, "seed skipped, users table not empty")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	dept := "Mechanical Engineering"
	users := []*model.User{
		{Email: "admin@labgigs.dev", Name: "Admin", Role: common.Admin, PasswordHash: string(hash)},
		{Email: "ramesh@labgigs.dev", Name: "Ramesh Kumar", Role: common.Facilitator, PasswordHash: string(hash), Department: &dept, Experience: 8},
		{Email: "priya@labgigs.dev", Name: "Priya Nair", Role: common.FacilityManager, PasswordHash: string(hash), Experience: 12},
		{Email: "arjun@labgigs.dev", Name: "Arjun Menon", Role: common.Student, PasswordHash: string(hash)},
		{Email: "divya@labgigs.dev", Name: "Divya Shree", Role: common.Student, PasswordHash: string(hash)},
	}
	if err := d.Create(&users).Error; err != nil {
		return err
	}

	labs := []*model.Lab{
		{Name: "Fabrication Lab", Description: "CNC, 3D printing and rapid prototyping", Category: "fabrication", Location: "Block A", Capacity: 24},
		{Name: "Electronics Lab", Description: "PCB design, embedded systems and test benches", Category: "electronics", Location: "Block C", Capacity: 30},
	}
	if err := d.Create(&labs).Error; err != nil {
		return err
	}

	assignments := []*model.FacilitatorLab{
		{FacilitatorID: users[1].ID, LabID: labs[0].ID, AssignedAt: time.Now()},
		{FacilitatorID: users[2].ID, LabID: labs[1].ID, AssignedAt: time.Now()},
	}
	if err := d.Create(&assignments).Error; err != nil {
		return err
	}

	equipment := []*model.Equipment{
		{LabID: labs[0].ID, Name: "Prusa MK4 3D Printer", SerialNumber: "FAB-3DP-001", Category: "printer", Status: model.EquipmentAvailable, Condition: "good", Cost: 1099},
		{LabID: labs[0].ID, Name: "Desktop CNC Mill", SerialNumber: "FAB-CNC-001", Category: "cnc", Status: model.EquipmentAvailable, Condition: "good", Cost: 3450},
		{LabID: labs[1].ID, Name: "Rigol DS1104 Oscilloscope", SerialNumber: "ELE-OSC-001", Category: "instrument", Status: model.EquipmentAvailable, Condition: "new", Cost: 480},
	}
	if err := d.Create(&equipment).Error; err != nil {
		return err
	}

	logger.Infof(ctx, "seed done: %d users, %d labs, %d equipment", len(users), len(labs), len(equipment))
	return nil
}
