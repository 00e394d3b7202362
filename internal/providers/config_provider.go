package providers

import (
	"eternalquest/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
)

const AppName = "EternalQuest"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("ledger.userName", "Player1")
	viper.SetDefault("ledger.pointsPerLevel", 1000)
	viper.SetDefault("persistence.driver", "file")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", 0644)

	viper.BindEnv("logger.level", "EQ_LOG_LEVEL")
	viper.BindEnv("persistence.filePath", "EQ_DATA_FILE")
	viper.BindEnv("persistence.driver", "EQ_STORAGE_DRIVER")
	viper.BindEnv("ledger.userName", "EQ_USER_NAME")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
