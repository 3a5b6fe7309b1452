package main

import (
	"log"
	"os"

	"github.com/trezcool/schoolfees/core"
	"github.com/trezcool/schoolfees/core/fee"
	logsvc "github.com/trezcool/schoolfees/services/logger"
	"github.com/trezcool/schoolfees/storage"
)

func main() {
	logger := logsvc.NewConsoleLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile))

	conf, err := core.NewConfig()
	if err != nil {
		logger.Fatal("loading config", err)
	}
	src, err := storage.OpenFeeSource(conf)
	if err != nil {
		logger.Fatal("setting up fee source", err)
	}

	// start CLI
	cli := commandLine{
		feeSvc: fee.NewService(src),
		in:     os.Stdin,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
