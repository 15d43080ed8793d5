package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/config"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/server"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (config.toml wins unless port is not set there)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config file)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Al-Zumuruda sales portal")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		logrus.WithError(err).Warn("config load failed, using defaults")
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// Command-line overrides.
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	resolvedDataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("cannot create data directory")
	}
	fmt.Printf("data directory: %s\n", resolvedDataDir)

	srv := server.NewServer(cfg, resolvedDataDir)
	srv.Warmup()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("listening on port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			logrus.WithError(err).Fatal("server start failed")
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("could not open a browser, visit %s manually\n", url)
		}
	} else {
		fmt.Printf("dev mode: visit %s\n", url)
	}

	fmt.Println("\npress Ctrl+C to stop ...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nshutting down ...")
}
