package logs

import (
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logFormat = "%{color}[%{level:.4s}] %{time:15:04:05.000000} [%{shortpkg}] %{longfunc} -> %{color:reset}%{message}"
	Log       = logging.MustGetLogger("trinity")
)

func Setup() {
	logging.SetFormatter(logging.MustStringFormatter(logFormat))
	logging.SetBackend(logging.NewLogBackend(os.Stdout, "", 0))
}

func SetConfig(config *viper.Viper) {
	level, err := logging.LogLevel(config.GetString("log.level"))
	if err != nil {
		Log.Warningf("Could not set log level to %v: %v", config.GetString("log.level"), err)
		Log.Warning("Using default log level")
		level = logging.INFO
	}

	consoleBackEnd := logging.AddModuleLevel(logging.NewLogBackend(os.Stdout, "", 0))
	consoleBackEnd.SetLevel(level, "trinity")

	if config.GetBool("log.useRollingLogFile") {
		rollingBackEnd := logging.AddModuleLevel(logging.NewLogBackend(&lumberjack.Logger{
			Filename:   config.GetString("log.logFile"),
			MaxSize:    config.GetInt("log.maxLogFileSize"), // megabytes
			MaxBackups: config.GetInt("log.maxLogFilesToKeep"),
			Compress:   true,
		}, "", 0))
		rollingBackEnd.SetLevel(level, "trinity")

		logging.SetBackend(consoleBackEnd, rollingBackEnd)
	} else {
		logging.SetBackend(consoleBackEnd)
	}
}
