package content

import (
	"fmt"

	"ecertify/pkg/utilities"
)

const (
	DriverMemory = "memory"
	DriverBadger = "badger"
	DriverIpfs   = "ipfs"
)

type ConfigJson struct {
	Driver     string `json:"driver"`
	IpfsApi    string `json:"ipfs_api"`
	BadgerPath string `json:"badger_path"`
}

type Config struct {
	Driver     string
	IpfsApi    string
	BadgerPath string
}

func (cj ConfigJson) ConvertToDomain() Config {
	return Config{
		Driver:     utilities.Ternary(cj.Driver == "", DriverMemory, cj.Driver),
		IpfsApi:    utilities.Ternary(cj.IpfsApi == "", "localhost:5001", cj.IpfsApi),
		BadgerPath: cj.BadgerPath,
	}
}

func NewStoreFromConfig(conf Config) (Store, error) {
	switch conf.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverBadger:
		return NewBadgerStore(conf.BadgerPath)
	case DriverIpfs:
		return NewIpfsStore(conf.IpfsApi), nil
	default:
		return nil, fmt.Errorf("unsupported content driver %q", conf.Driver)
	}
}
