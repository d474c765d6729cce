package main

import (
	"github.com/kairos-io/provider-clustertemplate/pkg/commands"
	"github.com/kairos-io/provider-clustertemplate/pkg/log"

	"github.com/sirupsen/logrus"
)

func main() {
	log.InitLogger("")
	logrus.Info("starting provider-clustertemplate")

	if err := commands.Root().Execute(); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("completed provider-clustertemplate")
}
