package config

type Config interface {
	EnvConfig
	BulkConfig
}

type mainConfig struct {
	EnvVars
	Bulk
}

func New() Config {
	return mainConfig{}
}
