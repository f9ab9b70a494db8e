package db

import (
	// 外部依赖
	"context"
	"fmt"
	"time"

	postgres "gorm.io/driver/postgres"
	gorm "gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	tracing "gorm.io/plugin/opentelemetry/tracing"

	// 内部引用
	logger "github.com/srinivas-tce/labgigs/pkg/middleware/logger"
)

type LogConf struct {
	Level string
}

type Config struct {
	Host    string
	Port    int
	User    string
	PW      string
	DBName  string
	LogConf LogConf
}

type Datastore struct {
	db *gorm.DB
}

var store *Datastore

// txKey 事务句柄在 context 中的键
type txKey struct{}

func InitPostgres(ctx context.Context, conf *Config) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		conf.Host, conf.Port, conf.User, conf.PW, conf.DBName)

	gormLevel := gormlogger.Warn
	if conf.LogConf.Level == "debug" {
		gormLevel = gormlogger.Info
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLevel),
	})
	if err != nil {
		logger.Fatalf(ctx, "open postgres err: %+v", err)
	}

	if err := gdb.Use(tracing.NewPlugin()); err != nil {
		logger.Warnf(ctx, "register gorm otel plugin err: %+v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Fatalf(ctx, "get sql db err: %+v", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	store = &Datastore{db: gdb}
}

func ClosePostgres(_ context.Context) {
	if store == nil {
		return
	}
	if sqlDB, err := store.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func DB() *Datastore {
	return store
}

// DBIns 暴露底层 gorm 句柄
func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

// DBWithContext 事务上下文内返回事务句柄，否则返回连接池句柄
func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return d.db.WithContext(ctx)
}

// ExecTx 在单个事务中执行 fn，fn 内通过 DBWithContext 取事务句柄
func (d *Datastore) ExecTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.DBWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
