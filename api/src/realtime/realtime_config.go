package realtime

import (
	"time"

	"ecertify/pkg/utilities"
)

type ConfigJson struct {
	SubscriberBuffer int `json:"subscriber_buffer"`
	HeartbeatSeconds int `json:"heartbeat_seconds"`
}

type Config struct {
	SubscriberBuffer int
	Heartbeat        time.Duration
}

func (cj ConfigJson) ConvertToDomain() Config {
	return Config{
		SubscriberBuffer: utilities.Ternary(cj.SubscriberBuffer <= 0, 64, cj.SubscriberBuffer),
		Heartbeat:        time.Duration(utilities.Ternary(cj.HeartbeatSeconds <= 0, 15, cj.HeartbeatSeconds)) * time.Second,
	}
}
