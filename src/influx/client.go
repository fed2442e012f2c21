package influx

import (
	"sync"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"weather-station-analyzer/src/config"
)

var (
	clientInstance influxdb2.Client
	once           sync.Once
)

func getClient(cfg config.Config) influxdb2.Client {
	once.Do(func() {
		clientInstance = influxdb2.NewClient(cfg.InfluxURL, cfg.InfluxToken)
	})

	return clientInstance
}
