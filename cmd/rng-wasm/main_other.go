//go:build !wasip1

package main

import (
	"os"

	"coinflip/internal/logger"
)

func main() {
	log := logger.NewStderr()
	log.Error().Msg("rng-wasm only runs as a wasip1 module, build it with GOOS=wasip1 GOARCH=wasm")
	os.Exit(1)
}
