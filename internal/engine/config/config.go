package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/scenicrp/roster/pkg/database"
	httpx "github.com/scenicrp/roster/pkg/http"
	"github.com/scenicrp/roster/pkg/log"
)

/**
 * @file: config.go
 * @description: application configuration, TOML file with hot reload
 */

type AppConfig struct {
	Log      log.Conf
	Http     httpx.Http
	Database database.Database
	Roster   RosterConfig
}

var (
	cfg      AppConfig
	settings *Settings
	once     sync.Once
)

// NewConf loads the configuration file once and returns it together with
// the hot-reloadable roster settings holder.
func NewConf(confFile string) (AppConfig, *Settings) {
	once.Do(func() {
		var err error
		cfg, settings, err = LoadConfigFile(confFile)
		if err != nil {
			panic(fmt.Sprintf("load config file error: %s", err))
		}
	})
	return cfg, settings
}

// LoadConfigFile reads the config file and watches it for changes. Roster
// settings (permission matrix, rank mapping, policy flags) are re-applied
// on every change so operations always observe the current configuration.
func LoadConfigFile(confFile string) (AppConfig, *Settings, error) {
	config := viper.New()
	config.SetConfigFile(confFile)
	if err := config.ReadInConfig(); err != nil {
		return cfg, nil, fmt.Errorf("failed to read configuration file: %v", err)
	}

	if err := config.Unmarshal(&cfg); err != nil {
		return cfg, nil, fmt.Errorf("failed to unmarshal configuration file: %v", err)
	}

	st := NewSettings(cfg.Roster)

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, reloading: %s", e.Name)
		var next AppConfig
		if err := config.Unmarshal(&next); err != nil {
			log.Errorw("failed to unmarshal configuration file", "error", err)
			return
		}
		st.Update(next.Roster)
	})

	return cfg, st, nil
}
