package config

import (
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gitlab.com/semkodev/trinity/logs"
)

var AppConfig = viper.New()

/*
PRECEDENCE (Higher number overrides the others):
1. default
2. config file
3. env
4. flag
*/
func Start() *viper.Viper {
	flag.String("log.level", "INFO", "Log level: CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG")
	flag.Bool("log.useRollingLogFile", false, "Whether to write the log to a rolling file")
	flag.String("log.logFile", "trinity.log", "Path of the rolling log file")
	flag.Int("log.maxLogFileSize", 10, "Maximum size of the log file in MB before it is rolled")
	flag.Int("log.maxLogFilesToKeep", 3, "Number of rolled log files to keep")

	flag.String("database.type", "", "Storage adapter backing the digest cache (badger, mem). Empty disables caching")
	flag.String("database.path", "data", "Path to the database directory")
	flag.String("database.prefix", "trinity", "Namespace prefix for all stored records")

	flag.Int("curl.rounds", 81, "Curl round count, 27 or 81")
	flag.StringP("trytes", "t", "", "Tryte string to hash. Read from stdin when empty")

	AppConfig.BindPFlags(flag.CommandLine)

	configPath := flag.StringP("config", "c", "trinity.config.json", "Config file path")
	flag.Parse()

	replacer := strings.NewReplacer(".", "_")
	AppConfig.SetEnvPrefix("TRINITY")
	AppConfig.SetEnvKeyReplacer(replacer)
	AppConfig.AutomaticEnv()

	if len(*configPath) > 0 {
		_, err := os.Stat(*configPath)
		if !flag.CommandLine.Changed("config") && os.IsNotExist(err) {
			// Standard config file not found => skip
			logs.Log.Info("Standard config file not found. Loading default settings.")
		} else {
			logs.Log.Infof("Loading config from: %s", *configPath)
			AppConfig.SetConfigFile(*configPath)
			if err := AppConfig.ReadInConfig(); err != nil {
				logs.Log.Fatalf("Config could not be loaded from: %s (%v)", *configPath, err)
			}
		}
	}

	return AppConfig
}
