package internal

// Config carries the monitor's inputs. Defaults match the endpoint the tool
// historically reported, so a bare run needs no environment at all.
type Config struct {
	Address  string `env:"NETMON_ADDRESS,default=192.168.1.1"`
	Port     int    `env:"NETMON_PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
}
