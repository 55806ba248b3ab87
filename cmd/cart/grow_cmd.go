package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature/yaml"
	"github.com/YuZhangIsCoding/ML-SelfLearning/tree"
	"github.com/spf13/cobra"
)

// trainingConfig holds the flags of the commands that grow a tree.
type trainingConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	classFeature  string
	collection    string
	maxDepth      int
	minSize       int
}

type growCmdConfig struct {
	trainingConfig
	output string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{trainingConfig: trainingConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict a certain feature and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			schema, err := config.schema()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := config.grow(ctx, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			err = outputTree(config.output, t, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written (defaults to STDOUT)")
	return cmd
}

func (tc *trainingConfig) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(tc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(tc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(tc.classFeature), "class-feature", "c", "", "name of the feature the generated tree should predict (required)")
	cmd.PersistentFlags().StringVar(&(tc.collection), "collection", defaultCollection, "name of the table, collection or list key holding the samples on database inputs")
	cmd.PersistentFlags().IntVarP(&(tc.maxDepth), "max-depth", "d", 1, "maximum depth of the tree, the root being at depth 0")
	cmd.PersistentFlags().IntVar(&(tc.minSize), "min-size", 1, "nodes with at most this number of samples become leaves")
}

func (tc *trainingConfig) Validate() error {
	if tc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if tc.classFeature == "" {
		return fmt.Errorf("required class-feature flag was not set")
	}
	if tc.maxDepth < 0 {
		return fmt.Errorf("max-depth flag was set to an invalid value: it must not be negative")
	}
	if tc.minSize < 1 {
		return fmt.Errorf("min-size flag was set to an invalid value: it must be positive")
	}
	return nil
}

func (tc *trainingConfig) schema() (*feature.Schema, error) {
	tc.Logf("Reading features from metadata at %s...", tc.metadataInput)
	schema, err := yaml.ReadSchemaFromFile(tc.metadataInput, tc.classFeature)
	if err != nil {
		return nil, err
	}
	tc.Logf("Features from metadata read")
	return schema, nil
}

func (tc *trainingConfig) grow(ctx context.Context, schema *feature.Schema) (*tree.Tree, error) {
	trainingSet, err := tc.readSet(ctx, tc.dataInput, tc.collection, schema)
	if err != nil {
		return nil, err
	}
	tc.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", len(trainingSet), len(schema.Features()), schema.Class().Name())
	t := &tree.Tree{}
	err = t.Train(trainingSet, tc.maxDepth, tc.minSize)
	if err != nil {
		return nil, fmt.Errorf("growing the tree: %w", err)
	}
	tc.Logf("Done: tree with depth %d and %d leaves", t.Depth(), t.LeafCount())
	return t, nil
}

func outputTree(outputPath string, t *tree.Tree, schema *feature.Schema) error {
	f := os.Stdout
	if outputPath != "" {
		var err error
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	_, err := fmt.Fprint(f, t.Format(schema.FeatureNames()))
	return err
}
