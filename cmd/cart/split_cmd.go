package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature/yaml"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*setCmdConfig
	splitOutput      string
	splitCollection  string
	splitProbability int
	seed             int64
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, for instance to obtain a training and a testing set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			config.Logf("Reading features from metadata at %s...", config.metadataInput)
			schema, err := yaml.ReadSchemaFromFile(config.metadataInput, config.classFeature)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			ds, err := config.readSet(ctx, config.setInput, config.collection, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			seed := config.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			config.Logf("Splitting input set with seed %d...", seed)
			output, split := splitSet(ds, config.splitProbability, rand.New(rand.NewSource(seed)))
			_, err = config.writeSet(ctx, config.setOutput, config.outputCollection, schema, output)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			_, err = config.writeSet(ctx, config.splitOutput, config.splitCollection, schema, split)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
			config.Logf("Done")
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", len(ds), len(output), len(split))
		},
	}
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis URL to dump the split set (required)")
	cmd.PersistentFlags().StringVar(&(config.splitCollection), "split-collection", defaultCollection, "name of the table, collection or list key to hold the split samples on database outputs")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of samples, to make a split reproducible (defaults to 0: seeded from the clock)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if err := scc.setCmdConfig.Validate(); err != nil {
		return err
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitOutput == scc.setOutput && scc.splitCollection == scc.outputCollection {
		return fmt.Errorf("output and split-output flags must point to different sets")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

// splitSet assigns every row of the dataset to the split set with the given
// percent probability and to the output set otherwise, keeping their order.
func splitSet(ds dataset.Dataset, probability int, randomizer *rand.Rand) (output, split dataset.Dataset) {
	for _, r := range ds {
		if (100 * randomizer.Float32()) > float32(probability) {
			output = append(output, r)
		} else {
			split = append(split, r)
		}
	}
	return output, split
}
