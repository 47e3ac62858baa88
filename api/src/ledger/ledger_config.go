package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"ecertify/pkg/utilities"
)

const (
	DriverMemory = "memory"
	DriverSolana = "solana"
)

type ConfigJson struct {
	Driver           string `json:"driver"`
	RpcEndpoint      string `json:"rpc_endpoint"`
	PayerKeypairPath string `json:"payer_keypair_path"`
}

type Config struct {
	Driver           string
	RpcEndpoint      string
	PayerKeypairPath string
}

func (cj ConfigJson) ConvertToDomain() Config {
	keypairPath := utilities.EnvOr("SOLANA_PAYER_KEYPAIR_PATH", cj.PayerKeypairPath)
	if keypairPath == "" {
		homeDir, _ := os.UserHomeDir()
		keypairPath = filepath.Join(homeDir, ".config", "solana", "id.json")
	}

	return Config{
		Driver:           utilities.Ternary(cj.Driver == "", DriverMemory, cj.Driver),
		RpcEndpoint:      utilities.Ternary(cj.RpcEndpoint == "", "http://localhost:8899", cj.RpcEndpoint),
		PayerKeypairPath: keypairPath,
	}
}

func NewClientFromConfig(conf Config) (Client, error) {
	switch conf.Driver {
	case DriverMemory:
		return NewMemoryClient(), nil
	case DriverSolana:
		return NewSolanaClient(conf.RpcEndpoint, conf.PayerKeypairPath)
	default:
		return nil, fmt.Errorf("unsupported ledger driver %q", conf.Driver)
	}
}
