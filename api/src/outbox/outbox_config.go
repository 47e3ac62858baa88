package outbox

import "ecertify/pkg/utilities"

type ConfigJson struct {
	Schedule  string `json:"schedule"`
	BatchSize int    `json:"batch_size"`
}

type Config struct {
	Schedule  string
	BatchSize int
}

func (cj ConfigJson) ConvertToDomain() Config {
	return Config{
		Schedule:  utilities.Ternary(cj.Schedule == "", "@every 10s", cj.Schedule),
		BatchSize: utilities.Ternary(cj.BatchSize <= 0, 100, cj.BatchSize),
	}
}
