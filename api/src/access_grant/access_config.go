package accessgrant

import (
	"strings"

	"ecertify/pkg/utilities"
)

type ConfigJson struct {
	EnforceGrants bool   `json:"enforce_grants"`
	ShareBaseUrl  string `json:"share_base_url"`
}

type Config struct {
	EnforceGrants bool
	ShareBaseUrl  string
}

func (cj ConfigJson) ConvertToDomain() Config {
	return Config{
		EnforceGrants: cj.EnforceGrants,
		ShareBaseUrl:  strings.TrimRight(utilities.Ternary(cj.ShareBaseUrl == "", "http://localhost:8080/view", cj.ShareBaseUrl), "/"),
	}
}
