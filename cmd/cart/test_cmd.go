package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	trainingConfig
	testInput      string
	testCollection string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{trainingConfig: trainingConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a set of data and test its performance against a testing set`,
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
			testingSet, err := config.readSet(ctx, config.testInput, config.testCollection, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			t, err := config.grow(ctx, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing tree against testing set with %d samples...", len(testingSet))
			successRate, err := t.Test(testingSet)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			fmt.Printf("%f success rate over %d samples\n", successRate, len(testingSet))
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis URL with the testing set (required)")
	cmd.PersistentFlags().StringVar(&(config.testCollection), "test-collection", defaultCollection, "name of the table, collection or list key holding the testing samples on database inputs")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if err := tcc.trainingConfig.Validate(); err != nil {
		return err
	}
	if tcc.testInput == "" {
		return fmt.Errorf("required test-input flag was not set")
	}
	return nil
}
