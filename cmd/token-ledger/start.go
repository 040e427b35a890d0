package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/axiomesh/token-ledger/api/rest"
	"github.com/axiomesh/token-ledger/internal/app"
	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/profile"
	"github.com/axiomesh/token-ledger/pkg/repo"
)

var startArgs = struct {
	HTTPPort    int64
	MonitorPort int64
}{}

func start(ctx *cli.Context) error {
	p, err := getRootPath(ctx)
	if err != nil {
		return err
	}

	if !repo.FileExist(filepath.Join(p, repo.CfgFileName)) {
		fmt.Printf("%s is not initialized, please execute '%s config generate' first\n", repo.AppName, repo.AppName)
		return nil
	}

	r, err := repo.Load(p)
	if err != nil {
		return err
	}
	if startArgs.HTTPPort != 0 {
		r.Config.Port.HTTP = startArgs.HTTPPort
	}
	if startArgs.MonitorPort != 0 {
		r.Config.Port.Monitor = startArgs.MonitorPort
	}

	appCtx, cancel := context.WithCancel(ctx.Context)
	if err := loggers.Initialize(r, true); err != nil {
		cancel()
		return err
	}
	defer cancel()

	log := loggers.Logger(loggers.App)
	printVersion(func(c string) {
		log.Info(c)
	})
	r.PrintNodeInfo(func(c string) {
		log.Info(c)
	})

	var wg sync.WaitGroup
	err = func() error {
		if err := repo.WritePid(r.RepoRoot); err != nil {
			return fmt.Errorf("write pid error: %s", err)
		}

		node, err := app.NewTokenLedger(r, appCtx, cancel)
		if err != nil {
			return fmt.Errorf("init token-ledger failed: %w", err)
		}

		monitor, err := profile.NewMonitor(r.Config)
		if err != nil {
			return err
		}
		if err := monitor.Start(); err != nil {
			return err
		}

		// start the REST service
		api := rest.NewServer(r, node.Executor, node.Ledger)
		if err := api.Start(); err != nil {
			return fmt.Errorf("start rest service failed: %w", err)
		}

		wg.Add(1)
		handleShutdown(node, api, monitor, &wg)

		if err := node.Start(); err != nil {
			return fmt.Errorf("start token-ledger failed: %w", err)
		}

		return nil
	}()
	if err != nil {
		log.WithField("err", err).Error("Startup failed")
		return err
	}

	wg.Wait()

	if err := repo.RemovePID(r.RepoRoot); err != nil {
		log.WithField("err", err).Error("Remove pid failed")
		return fmt.Errorf("remove pid file error: %s", err)
	}

	return nil
}

func printVersion(writer func(c string)) {
	writer(fmt.Sprintf("%s version: %s-%s-%s", repo.AppName, repo.BuildVersion, repo.BuildBranch, repo.BuildCommit))
	writer(fmt.Sprintf("App build date: %s", repo.BuildDate))
	writer(fmt.Sprintf("System version: %s", repo.Platform))
	writer(fmt.Sprintf("Golang version: %s", repo.GoVersion))
}

func handleShutdown(node *app.TokenLedger, api *rest.Server, monitor *profile.Monitor, wg *sync.WaitGroup) {
	var stop = make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGTERM)
	signal.Notify(stop, syscall.SIGINT)

	go func() {
		<-stop
		fmt.Println("received interrupt signal, shutting down...")
		if err := api.Stop(); err != nil {
			fmt.Println("stop rest service failed:", err)
		}
		if err := monitor.Stop(); err != nil {
			fmt.Println("stop monitor failed:", err)
		}
		if err := node.Stop(); err != nil {
			panic(err)
		}
		wg.Done()
		os.Exit(0)
	}()
}
