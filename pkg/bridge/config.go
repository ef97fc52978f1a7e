package bridge

import (
	"fmt"

	"github.com/spf13/viper"
)

/*
Config is the immutable bridge configuration, read once at process start and
passed by reference into the constructors that need it.  Nothing re-reads
configuration after startup, so changes require a restart.
*/
type Config struct {
	Host string
	Port int

	// Secret guards the RPC endpoint.  Empty disables authentication.
	Secret string

	UpstreamURL   string
	UpstreamModel string
	UpstreamToken string
}

func NewConfigFromViper() *Config {
	v := viper.GetViper()

	return &Config{
		Host:          v.GetString("server.host"),
		Port:          v.GetInt("server.port"),
		Secret:        v.GetString("server.secret"),
		UpstreamURL:   v.GetString("upstream.url"),
		UpstreamModel: v.GetString("upstream.model"),
		UpstreamToken: v.GetString("upstream.token"),
	}
}

// CallableURL is the endpoint the agent card advertises.
func (cfg *Config) CallableURL() string {
	return fmt.Sprintf("http://%s:%d/rpc", cfg.Host, cfg.Port)
}
