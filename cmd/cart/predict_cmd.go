package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/csv"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/inputsample"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
	"github.com/YuZhangIsCoding/ML-SelfLearning/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	trainingConfig
	samplesInput string
	output       string
	interactive  bool
}

type stdoutFeatureValueRequester struct {
	out io.Writer
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{trainingConfig: trainingConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of samples",
		Long: `Grow a tree from a set of data and use it to predict the class feature value of samples,
either read from a CSV file or answering questions about their features`,
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
			if config.interactive {
				label, err := predictInteractively(t, schema, os.Stdin, os.Stdout)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(5)
				}
				fmt.Printf("Predicted %s is %s\n", schema.Class().Name(), label)
				return
			}
			config.Logf("Reading samples to predict from %s...", describe(config.samplesInput))
			rows, err := csv.ReadFeatureRowsFromFilePath(config.samplesInput, schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			err = config.writePredictions(t, schema, rows)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			config.Logf("Predicted %d samples", len(rows))
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.samplesInput), "samples", "s", "", "path to a CSV file with the samples to predict, the class feature column being optional (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a CSV file to which the samples will be written with their predicted class (defaults to STDOUT)")
	cmd.PersistentFlags().BoolVar(&(config.interactive), "interactive", false, "ask for the feature values of a single sample on STDIN instead of reading samples from a file")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if err := pcc.trainingConfig.Validate(); err != nil {
		return err
	}
	if pcc.dataInput == "" && (pcc.samplesInput == "" || pcc.interactive) {
		return fmt.Errorf("input flag is required when samples are read from STDIN")
	}
	return nil
}

func (pcc *predictCmdConfig) writePredictions(t *tree.Tree, schema *feature.Schema, rows [][]float64) error {
	f := os.Stdout
	if pcc.output != "" {
		var err error
		f, err = os.Create(pcc.output)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return writePredictions(f, t, schema, rows)
}

// writePredictions writes the given rows as CSV with the class predicted for
// each of them by the tree.
func writePredictions(w io.Writer, t *tree.Tree, schema *feature.Schema, rows [][]float64) error {
	labels, err := t.Predict(rows)
	if err != nil {
		return err
	}
	predicted := make(dataset.Dataset, 0, len(rows))
	for i, features := range rows {
		predicted = append(predicted, dataset.Row{Features: features, Label: labels[i]})
	}
	return csv.WriteSet(w, predicted, schema)
}

func predictInteractively(t *tree.Tree, schema *feature.Schema, in io.Reader, out io.Writer) (string, error) {
	r := inputsample.New(in, schema, stdoutFeatureValueRequester{out})
	features, err := r.ReadFeatures()
	if err != nil {
		return "", err
	}
	return t.PredictRow(features)
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f *feature.ContinuousFeature) error {
	_, err := fmt.Fprintf(sfvr.out, "Please provide the sample's %s:\n(valid values are real numbers)\n", f.Name())
	return err
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f *feature.ContinuousFeature, value string) error {
	_, err := fmt.Fprintf(sfvr.out, "%v is not a valid value for the sample's %s. Please provide a real number.\n", value, f.Name())
	return err
}
