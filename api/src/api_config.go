package main

import (
	accessgrant "ecertify/api/src/access_grant"
	"ecertify/api/src/content"
	"ecertify/api/src/database"
	"ecertify/api/src/ledger"
	"ecertify/api/src/outbox"
	"ecertify/api/src/realtime"
	"ecertify/pkg/logger"
	"ecertify/pkg/rabbitmq"
	"ecertify/pkg/utilities"
)

type ApiConfigJson struct {
	LoggerConf   logger.LoggerConfigJson    `json:"logger"`
	RabbitmqConf rabbitmq.RabbimqConfigJson `json:"rabbitmq"`
	RestConf     ApiRestConfigJson          `json:"rest"`
	DatabaseConf database.ConfigJson        `json:"database"`
	ContentConf  content.ConfigJson         `json:"content"`
	LedgerConf   ledger.ConfigJson          `json:"ledger"`
	AccessConf   accessgrant.ConfigJson     `json:"access"`
	RealtimeConf realtime.ConfigJson        `json:"realtime"`
	OutboxConf   outbox.ConfigJson          `json:"outbox"`
}

func (acj ApiConfigJson) ConvertToDomain() ApiConfig {
	return ApiConfig{
		LoggerConf:   acj.LoggerConf.ConvertToDomain(),
		RabbitmqConf: acj.RabbitmqConf.ConvertToDomain(),
		RestConf:     acj.RestConf.ConvertToDomain(),
		DatabaseConf: acj.DatabaseConf.ConvertToDomain(),
		ContentConf:  acj.ContentConf.ConvertToDomain(),
		LedgerConf:   acj.LedgerConf.ConvertToDomain(),
		AccessConf:   acj.AccessConf.ConvertToDomain(),
		RealtimeConf: acj.RealtimeConf.ConvertToDomain(),
		OutboxConf:   acj.OutboxConf.ConvertToDomain(),
	}
}

type ApiConfig struct {
	LoggerConf   logger.LoggerConfig
	RabbitmqConf rabbitmq.RabbitmqConfig
	RestConf     ApiRestConfig
	DatabaseConf database.Config
	ContentConf  content.Config
	LedgerConf   ledger.Config
	AccessConf   accessgrant.Config
	RealtimeConf realtime.Config
	OutboxConf   outbox.Config
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConf
}

func (ac ApiConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return ac.RabbitmqConf
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestConf.Port
}

func (ac ApiConfig) GetDatabaseConfig() database.Config {
	return ac.DatabaseConf
}

type ApiRestConfigJson struct {
	Port          uint16 `json:"port"`
	AllowedOrigin string `json:"allowed_origin"`
}

type ApiRestConfig struct {
	Port          uint16
	AllowedOrigin string
}

func (arcj ApiRestConfigJson) ConvertToDomain() ApiRestConfig {
	return ApiRestConfig{
		Port:          utilities.Ternary(arcj.Port == 0, uint16(9000), arcj.Port),
		AllowedOrigin: utilities.Ternary(arcj.AllowedOrigin == "", "*", arcj.AllowedOrigin),
	}
}
