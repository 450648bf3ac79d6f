package main

import (
	"os"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
