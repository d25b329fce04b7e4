// @title Live Event Voting API
// @version 1.0
// @description Backend API for live audience voting and the prize wheel

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	_ "github.com/alex-pricope/live-event-voting/docs"

	"github.com/alex-pricope/live-event-voting/api"
	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	config := api.ReadConfig()
	server := api.NewServer(config)
	server.Start()
}
