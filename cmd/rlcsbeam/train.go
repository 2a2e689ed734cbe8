package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/rlcsbeam/config"
	"github.com/katalvlaran/rlcsbeam/instanceio"
	"github.com/katalvlaran/rlcsbeam/mlp"
	"github.com/katalvlaran/rlcsbeam/runlog"
	"github.com/katalvlaran/rlcsbeam/trainer"
	"github.com/katalvlaran/rlcsbeam/weightsio"
	"github.com/spf13/cobra"
)

const trainingBSTimeLimit = 10 * time.Second

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "train [flags]",
		Short:              "Train a scorer's weights via population-based search",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(args)
		},
	}
	return cmd
}

func runTrain(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.WarnDefaults(nil)

	basePath, err := instanceio.LoadBasePath(cfg.InstancesPathFile)
	if err != nil {
		return err
	}
	trainingFiles, err := instanceio.LoadFileList(cfg.TrainingInstancesFile)
	if err != nil {
		return err
	}
	validationFiles, err := instanceio.LoadFileList(cfg.ValidationInstancesFile)
	if err != nil {
		return err
	}

	trainingInstances, err := instanceio.LoadInstances(basePath, trainingFiles)
	if err != nil {
		return err
	}
	validationInstances, err := instanceio.LoadInstances(basePath, validationFiles)
	if err != nil {
		return err
	}

	numThreads := cfg.NumThreads
	if cfg.Parallel && numThreads == 0 {
		numThreads = len(trainingInstances)
	}

	opts := trainer.Options{
		WeightLimit:                 cfg.WeightLimit,
		TrainingBeamWidth:           cfg.TrainingBeamWidth,
		TrainingBSTimeLimit:         trainingBSTimeLimit,
		TrainingTimeLimit:           cfg.TrainingTimeLimit,
		FeatureConfiguration:        cfg.FeatureConfiguration,
		PopulationSize:              cfg.PopulationSize,
		Elites:                      cfg.NElites,
		Mutants:                     cfg.NMutants,
		EliteInheritanceProbability: cfg.EliteInheritanceProbability,
		GAConfiguration:             trainer.GAKind(cfg.GAConfiguration),
		Parallel:                    cfg.Parallel,
		NumThreads:                  numThreads,
	}

	units := cfg.UnitsPerLayer(cfg.FeatureCount())
	activation := mlp.Activation(cfg.ActivationFunction)

	runID := uuid.New()
	rec, err := runlog.NewRecorder(".", runID, nil)
	if err != nil {
		return err
	}
	defer rec.Close()

	tr, err := trainer.NewTrainer(opts, units, activation, trainingInstances, validationInstances,
		trainer.WithRunID(runID),
		trainer.WithOnImprovement(func(cp trainer.Checkpoint, weights []float64) {
			_ = rec.RecordCheckpoint(cp, weights)
		}))
	if err != nil {
		return err
	}

	res, err := tr.Train(context.Background())
	if err != nil {
		return err
	}

	lastWeightsPath := filepath.Join(".", "last_weights.txt")
	if err := weightsio.Write(lastWeightsPath, res.BestWeights); err != nil {
		return fmt.Errorf("train: persist final weights: %w", err)
	}
	return nil
}
