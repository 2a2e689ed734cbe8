package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/rlcsbeam/beamsearch"
	"github.com/katalvlaran/rlcsbeam/config"
	"github.com/katalvlaran/rlcsbeam/instance"
	"github.com/katalvlaran/rlcsbeam/mlp"
	"github.com/katalvlaran/rlcsbeam/weightsio"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "solve [flags]",
		Short:              "Solve a single CC-LCS instance with a pre-trained scorer",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args)
		},
	}
	return cmd
}

func runSolve(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return err
	}
	if cfg.InputFile == "" {
		return fmt.Errorf("solve: -i <instance file> is required")
	}
	cfg.WarnDefaults(nil)

	inst, err := instance.Load(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("solve: load instance: %w", err)
	}

	weights, err := weightsio.Read(cfg.WeightsFile)
	if err != nil {
		return fmt.Errorf("solve: load weights: %w", err)
	}

	activation := mlp.Activation(cfg.ActivationFunction)
	units := cfg.UnitsPerLayer(cfg.FeatureCount())
	scorer, err := mlp.New(units, activation)
	if err != nil {
		return fmt.Errorf("solve: build scorer: %w", err)
	}
	if err := scorer.UnpackWeights(weights); err != nil {
		return fmt.Errorf("solve: load weights into scorer: %w", err)
	}

	opts := beamsearch.DefaultOptions()
	opts.TimeLimit = cfg.TimeLimit
	opts.BeamWidth = cfg.BeamWidth
	opts.FeatureConfiguration = cfg.FeatureConfiguration

	res, err := beamsearch.Run(context.Background(), inst, scorer, opts)
	if err != nil {
		return fmt.Errorf("solve: run beam search: %w", err)
	}

	feasible := beamsearch.Validate(inst, res.Solution)
	if !feasible {
		slog.Warn("reconstructed solution failed independent validation",
			slog.String("instance", inst.Name))
	}
	return weightsio.WriteSolution(cfg.OutputFile, weightsio.Solution{
		InstanceName: inst.Name,
		Objective:    res.BestLength,
		Rendered:     renderSpaced(inst, res.Solution),
		Elapsed:      res.Elapsed,
		Feasible:     feasible,
	})
}

func renderSpaced(inst *instance.Instance, sol []int) string {
	rendered := inst.Render(sol)
	spaced := make([]byte, 0, 2*len(rendered))
	for i, r := range rendered {
		if i > 0 {
			spaced = append(spaced, ' ')
		}
		spaced = append(spaced, byte(r))
	}
	return string(spaced)
}
