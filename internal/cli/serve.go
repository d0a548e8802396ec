package cli

import (
	"time"

	"github.com/spf13/cobra"

	"vmsched/internal/metrics"
	"vmsched/internal/server"
	"vmsched/internal/sim"
)

const metricFlushInterval = time.Second

func newServeCommand(root *rootOptions) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			addr := cfg.Listen
			if listenAddr != "" {
				addr = listenAddr
			}

			scope, closer, promHandler, err := metrics.InitMetricScope(cfg.Metrics, cfg.MetricsPrefix, metricFlushInterval)
			if err != nil {
				return err
			}
			defer closer.Close()

			s := sim.New(scope, sim.WithLimits(cfg.Limits))
			return server.New(s, addr, promHandler).Run()
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "address to listen on (overrides config)")
	return cmd
}
