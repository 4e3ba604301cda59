package main

import (
	"github.com/spf13/cobra"

	"github.com/charlieallen/portfolio/pkg/lambdaproxy"
	"github.com/charlieallen/portfolio/pkg/logger"
)

func newLambdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run the contact relay as an API Gateway Lambda handler",
		Long: `Handle API Gateway REST (v1) and HTTP API (v2) proxy events.

Only the contact endpoint is served; any path accepts the POST. A Lambda
container keeps its in-memory rate limit between invocations; set
REDIS_URL to share it across containers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			log := newLogger(cfg)
			d, err := newDeps(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer d.close(cmd.Context())

			lambdaproxy.New(newRelayApp(cfg, d),
				lambdaproxy.WithLogger(log),
				lambdaproxy.WithFlush(logger.Flush),
			).Start()
			return nil
		},
	}
}
