//go:build tinygo

package main

import (
	"nanoshader/app"
	"nanoshader/hal"
)

func main() {
	app.Run(hal.New(), app.Config{LogEvery: 100})
}
