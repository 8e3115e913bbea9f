package notionify

import (
	"github.com/riverfjs/notionify-go/internal/logging"
)

// LeveledLogger 包内使用的日志接口，go-logger 的 glog.Logger 可直接传入
type LeveledLogger = logging.Logger

// Logger 全局日志记录器
var Logger LeveledLogger = defaultLogger()

func defaultLogger() LeveledLogger {
	provider, err := logging.NewProvider(logging.Config{Level: "info", Format: "console"})
	if err != nil {
		return logging.NoOp()
	}
	return provider.GetLogger("notionify")
}

// SetLogger 设置自定义日志记录器，传入 nil 时丢弃日志
func SetLogger(logger LeveledLogger) {
	if logger == nil {
		logger = logging.NoOp()
	}
	Logger = logger
}
