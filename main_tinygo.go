//go:build tinygo && baremetal

package main

import (
	"inputhistory/app"
	"inputhistory/config"
	"inputhistory/hal"
)

func main() {
	cfg, err := loadDefaults()
	if err != nil {
		cfg = config.Default()
	}
	_ = hal.Run(func(h hal.HAL) (func() error, error) {
		if err != nil {
			h.Logger().WriteLineString("config: " + err.Error())
		}
		return app.New(h, cfg)
	})
	select {}
}
