package api

import (
	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/spf13/viper"
	"sync"
)

type Config struct {
	StorageConfig
	ServerConfig
}

type StorageConfig struct {
	TableNameVotes      string
	TableNamePrizeLists string
	// DataDir is where the local-mode file storage keeps its documents.
	DataDir string
}

type ServerConfig struct {
	Port int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameVotes:      viper.GetString("storage.TableNameVotes"),
			TableNamePrizeLists: viper.GetString("storage.TableNamePrizeLists"),
			DataDir:             getStringOrDefault("storage.DataDir", "data"),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
