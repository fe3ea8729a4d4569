package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/cli/config"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/usecase"
	"github.com/urfave/cli/v3"
)

var decisionColors = map[types.Decision]*color.Color{
	types.DecisionShip:               color.New(color.FgGreen, color.Bold),
	types.DecisionShipWithConditions: color.New(color.FgYellow, color.Bold),
	types.DecisionEscalate:           color.New(color.FgRed, color.Bold),
}

func cmdAssess() *cli.Command {
	var inputPath string
	var format string
	var policyCfg config.Policy

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Feature submission JSON file (- for stdin)",
			Value:       "-",
			Sources:     cli.EnvVars("THEMIS_INPUT"),
			Destination: &inputPath,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format [markdown, json]",
			Value:       "markdown",
			Sources:     cli.EnvVars("THEMIS_FORMAT"),
			Destination: &format,
		},
	}
	flags = append(flags, policyCfg.Flags()...)

	return &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Assess a feature submission and print the decision report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := policyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load risk catalog")
			}

			data, err := readInput(inputPath)
			if err != nil {
				return err
			}

			var input model.FeatureInput
			if err := json.Unmarshal(data, &input); err != nil {
				return goerr.Wrap(err, "failed to parse feature submission", goerr.V("path", inputPath))
			}

			uc := usecase.New(cat, usecase.WithGeneratedAt(time.Now))
			result, err := uc.Assess(ctx, &input)
			if err != nil {
				return goerr.Wrap(err, "assessment failed")
			}
			result.ID = model.NewAssessmentID()

			switch format {
			case "json":
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return goerr.Wrap(err, "failed to marshal assessment result")
				}
				fmt.Println(string(out))
			case "markdown", "":
				printDecision(result)
			default:
				return goerr.New("invalid output format", goerr.V("format", format))
			}

			return nil
		},
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read feature submission from stdin")
		}
		return data, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read feature submission", goerr.V("path", path))
	}
	return data, nil
}

func printDecision(result *model.AssessmentResult) {
	if c, ok := decisionColors[result.Decision]; ok {
		c.Printf("%s\n\n", result.Decision)
	} else {
		fmt.Printf("%s\n\n", result.Decision)
	}
	fmt.Println(result.Markdown)
}
