package main

import (
	"os"

	"github.com/GPTx-global/oev-relay/oevd/log"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
