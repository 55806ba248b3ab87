package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/YuZhangIsCoding/ML-SelfLearning/feature/yaml"
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput         string
	metadataInput    string
	classFeature     string
	setOutput        string
	collection       string
	outputCollection string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long:  `Copy a set of data from one backend to another`,
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
			n, err := config.writeSet(ctx, config.setOutput, config.outputCollection, schema, ds)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			config.Logf("Done: %d samples written", n)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis URL with the set (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the different features available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", "name of the class feature of the set (required)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis URL to dump the output set (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVar(&(config.collection), "collection", defaultCollection, "name of the table, collection or list key holding the samples on database inputs")
	cmd.PersistentFlags().StringVar(&(config.outputCollection), "output-collection", defaultCollection, "name of the table, collection or list key to hold the samples on database outputs")
	cmd.AddCommand(splitCmd(config))
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if scc.classFeature == "" {
		return fmt.Errorf("required class-feature flag was not set")
	}
	return nil
}
