package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/axiomesh/token-ledger/pkg/repo"
)

func main() {
	loadEnvFile()

	app := cli.NewApp()
	app.Name = repo.AppName
	app.Usage = "A fungible-token ledger service with receipts, events and a REST API"
	app.Compiled = time.Now()

	cli.VersionPrinter = func(c *cli.Context) {
		printVersion(func(c string) {
			fmt.Println(c)
		})
	}

	// global flags
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "repo",
			Usage: "Work path",
		},
	}

	app.Commands = []*cli.Command{
		configCMD,
		{
			Name:   "start",
			Usage:  "Start a long-running daemon process",
			Action: start,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:        "port.http",
					Usage:       "REST service port, overrides the config file when set",
					Destination: &startArgs.HTTPPort,
					Required:    false,
				},
				&cli.Int64Flag{
					Name:        "port.monitor",
					Usage:       "Prometheus service port, overrides the config file when set",
					Destination: &startArgs.MonitorPort,
					Required:    false,
				},
			},
		},
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "Show code version",
			Action: func(ctx *cli.Context) error {
				printVersion(func(c string) {
					fmt.Println(c)
				})
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
	}
}

func loadEnvFile() {
	envFile := os.Getenv("TOKEN_LEDGER_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if repo.FileExist(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Printf("load env file %s failed: %s\n", envFile, err)
			return
		}
	}
}
