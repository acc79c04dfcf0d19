package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/iudanet/docsync/internal/client/api"
	"github.com/iudanet/docsync/internal/client/cli"
	"github.com/iudanet/docsync/internal/client/config"
	"github.com/iudanet/docsync/internal/client/docstore"
	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/client/netmon"
	"github.com/iudanet/docsync/internal/client/queue"
	"github.com/iudanet/docsync/internal/client/resolver"
	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/docsync/internal/client/sync"
	"github.com/iudanet/docsync/internal/crdt"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "docsync.yaml", "Path to YAML config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Флаги перекрывают значения из файла
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if cfg.NodeID == "" {
		cfg.NodeID = uuid.New().String()
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(nil, stdio).PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем движок синхронизации
	apiClient := api.NewClient(cfg.ServerURL)
	docs := docstore.NewStore(boltStorage, cfg.NodeID, logger)
	res := resolver.NewResolver(docs, boltStorage, logger)
	coordinator := syncsvc.NewCoordinator(apiClient, docs, res, logger)
	probe := netmon.NewProbe(apiClient, cfg.ProbeInterval, logger)
	monitor := netmon.NewMonitor(probe, logger)
	clock := crdt.NewLamportClockWithNodeID(cfg.NodeID)
	opQueue := queue.NewQueue(boltStorage, coordinator, monitor, clock, cfg.MaxRetries, logger)
	if err := opQueue.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load operation queue: %v\n", err)
		os.Exit(1)
	}
	svc := syncsvc.NewService(opQueue, docs, res, monitor, boltStorage, logger)

	commands := cli.New(svc, stdio)

	// Выполняем команду
	switch command {
	case "status":
		err = commands.RunStatus(ctx)
	case "sync":
		err = commands.RunSync(ctx)
	case "conflicts":
		err = commands.RunConflicts(ctx)
	case "resolve":
		err = commands.RunResolve(ctx, args[1:])
	case "cat":
		err = commands.RunCat(ctx, args[1:])
	case "insert":
		err = commands.RunInsert(ctx, args[1:])
	case "remove":
		err = commands.RunRemove(ctx, args[1:])
	case "cache-get":
		err = commands.RunCacheGet(ctx, args[1:])
	case "cache-rm":
		err = commands.RunCacheRemove(ctx, args[1:])
	case "cache-clear":
		err = commands.RunCacheClear(ctx)
	case "watch":
		err = commands.RunWatch(ctx, monitor, probe)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		commands.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("docsync client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
