package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/cli/config"
	"github.com/secmon-lab/themis/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var policyCfg config.Policy

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a risk catalog policy file",
		Flags:   policyCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			cat, err := policyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "policy validation failed")
			}

			logger.Info("Policy validation passed",
				"policy", policyCfg.Path(),
				"risk_count", cat.Len(),
			)
			for _, def := range cat.Definitions() {
				logger.Info("Risk validated",
					"id", def.ID,
					"impact", def.Impact,
					"likelihood", def.Likelihood,
					"trigger_count", len(def.Triggers),
				)
			}

			return nil
		},
	}
}
