// Command routerd runs the GRPC result-chunk router as a standalone
// process: a gRPC server bound to ListenAddr serving
// ResultSinkService, with a Prometheus /metrics handler on MetricsAddr.
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/kestrelql/resultrouter/internal/config"
	"github.com/kestrelql/resultrouter/internal/logging"
	"github.com/kestrelql/resultrouter/internal/resultrouter"
	"github.com/kestrelql/resultrouter/internal/routerpb"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "routerd",
		Short: "GRPC result-chunk router",
		RunE:  run,
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a routerd config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogDebug)
	if err != nil {
		return fmt.Errorf("resultrouter: building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logging.SetLogger(logger)

	svc := resultrouter.NewService(cfg.RegistryShards)

	reg := prometheus.NewRegistry()
	for _, c := range svc.Metrics() {
		reg.MustRegister(c)
	}

	go serveMetrics(cfg.MetricsAddr, reg, logger)

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("resultrouter: listening on %s: %w", cfg.ListenAddr, err)
	}

	grpcServer := grpc.NewServer()
	routerpb.RegisterResultSinkServiceServer(grpcServer, svc)

	logger.Info("routerd listening",
		zap.String("addr", cfg.ListenAddr),
		zap.Int("registry_shards", cfg.RegistryShards))

	return grpcServer.Serve(lis)
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
