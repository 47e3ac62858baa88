package utilities

import (
	"encoding/json"
	"os"
)

type JsonConfigObj[T any] interface {
	ConvertToDomain() T
}

func ReadConfig[T JsonConfigObj[U], U any](file string) (U, error) {
	var empty U

	fileContent, err := os.ReadFile(file)
	if err != nil {
		return empty, err
	}

	var config T
	err = json.Unmarshal(fileContent, &config)
	if err != nil {
		return empty, err
	}

	return config.ConvertToDomain(), nil
}

// ConvertJsonArrayToDomain keeps nil as nil so optional config sections stay unset.
func ConvertJsonArrayToDomain[T JsonConfigObj[U], U any](jsonArray []T) []U {
	if jsonArray == nil {
		return nil
	}
	converted := make([]U, len(jsonArray))
	for i, item := range jsonArray {
		converted[i] = item.ConvertToDomain()
	}
	return converted
}

// EnvOr returns the environment variable key when set, fallback otherwise.
func EnvOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
