package logger

import (
	// 外部依赖
	"context"
	"fmt"
	"os"

	otelzap "github.com/uptrace/opentelemetry-go-extra/otelzap"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path       string
	LogLevel   string
	ServiceEnv ServiceEnv
}

var global *otelzap.Logger

// Init 初始化全局日志，文件滚动 + 控制台输出，trace 信息由 otelzap 注入
func Init(conf *LogConfig) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encConf)

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    100, // MB
		MaxBackups: 10,
		MaxAge:     7, // days
		Compress:   true,
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, fileWriter, level),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	)

	base := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).With(
		zap.String("platform", conf.ServiceEnv.Platform),
		zap.String("service", conf.ServiceEnv.Service),
		zap.String("env", conf.ServiceEnv.Env),
	)
	global = otelzap.New(base, otelzap.WithMinLevel(level))
}

func Close() {
	if global != nil {
		_ = global.Sync()
	}
}

func logger() *otelzap.Logger {
	if global == nil {
		// 未初始化时兜底，测试场景直接打到控制台
		global = otelzap.New(zap.NewNop())
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...any) {
	logger().Ctx(ctx).Debug(fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	logger().Ctx(ctx).Info(fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	logger().Ctx(ctx).Warn(fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	logger().Ctx(ctx).Error(fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	logger().Ctx(ctx).Fatal(fmt.Sprintf(format, args...))
}
