package main

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature/yaml"
	"github.com/YuZhangIsCoding/ML-SelfLearning/tree"
)

const (
	metadata  = "features:\n  x0: continuous\n  x1: continuous\n  label: [A, B]\n"
	quadrants = "x0,x1,label\n1,0,A\n2,0,A\n1,1,B\n2,1,B\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestKindOf(t *testing.T) {
	cases := map[string]setKind{
		"":                              csvSet,
		"iris.csv":                      csvSet,
		"data/iris.db":                  sqlite3Set,
		"postgresql://localhost/cart":   postgreSQLSet,
		"postgres://u:p@localhost/cart": postgreSQLSet,
		"mongodb://localhost/cart":      mongoSet,
		"redis://localhost:6379/0":      redisSet,
	}
	for location, kind := range cases {
		assert.Equal(t, kind, kindOf(location), location)
	}
	assert.Equal(t, "SQLite3", sqlite3Set.String())
}

func TestGrowCommand(t *testing.T) {
	dir := t.TempDir()
	md := writeFile(t, dir, "metadata.yml", metadata)
	input := writeFile(t, dir, "train.csv", quadrants)
	output := filepath.Join(dir, "tree.txt")

	cmd := cliParser()
	cmd.SetArgs([]string{"grow", "-i", input, "-m", md, "-c", "label", "-d", "2", "-o", output})
	require.NoError(t, cmd.Execute())

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[ x1 < 1 ] (4 samples, gini 0.5000)")
	assert.Contains(t, string(out), "|__{ A } (2 samples)")
	assert.Contains(t, string(out), "{ B } (2 samples)")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cart v0.1.0\n", buf.String())
}

func TestWriteReadSQLite3Set(t *testing.T) {
	dir := t.TempDir()
	schema, err := yaml.ReadSchemaFromFile(writeFile(t, dir, "metadata.yml", metadata), "label")
	require.NoError(t, err)
	rcc := &rootCmdConfig{logger: zerolog.Nop()}
	ctx := context.Background()

	ds, err := rcc.readSet(ctx, writeFile(t, dir, "train.csv", quadrants), defaultCollection, schema)
	require.NoError(t, err)
	require.Len(t, ds, 4)

	db := filepath.Join(dir, "train.db")
	n, err := rcc.writeSet(ctx, db, "quadrants", schema, ds)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	copied, err := rcc.readSet(ctx, db, "quadrants", schema)
	require.NoError(t, err)
	assert.Equal(t, ds, copied)

	csvOut := filepath.Join(dir, "copy.csv")
	_, err = rcc.writeSet(ctx, csvOut, "", schema, copied)
	require.NoError(t, err)
	out, err := os.ReadFile(csvOut)
	require.NoError(t, err)
	assert.Equal(t, quadrants, string(out))
}

func TestSplitSet(t *testing.T) {
	var ds dataset.Dataset
	for i := 0; i < 200; i++ {
		ds = append(ds, dataset.Row{Features: []float64{float64(i)}, Label: "a"})
	}
	output, split := splitSet(ds, 25, rand.New(rand.NewSource(7)))
	assert.Equal(t, len(ds), len(output)+len(split))
	assert.NotEmpty(t, output)
	assert.NotEmpty(t, split)

	again, againSplit := splitSet(ds, 25, rand.New(rand.NewSource(7)))
	assert.Equal(t, output, again)
	assert.Equal(t, split, againSplit)

	all, none := splitSet(ds, 100, rand.New(rand.NewSource(7)))
	assert.Empty(t, all)
	assert.Len(t, none, len(ds))
}

func TestPredictions(t *testing.T) {
	dir := t.TempDir()
	schema, err := yaml.ReadSchemaFromFile(writeFile(t, dir, "metadata.yml", metadata), "label")
	require.NoError(t, err)
	tr := &tree.Tree{}
	require.NoError(t, tr.Train(dataset.Dataset{
		{Features: []float64{1, 0}, Label: "A"},
		{Features: []float64{2, 0}, Label: "A"},
		{Features: []float64{1, 1}, Label: "B"},
		{Features: []float64{2, 1}, Label: "B"},
	}, 2, 1))

	var buf bytes.Buffer
	require.NoError(t, writePredictions(&buf, tr, schema, [][]float64{{5, 0.5}, {0, 3}}))
	assert.Equal(t, "x0,x1,label\n5,0.5,A\n0,3,B\n", buf.String())

	var prompts bytes.Buffer
	label, err := predictInteractively(tr, schema, strings.NewReader("7\nlots\n2\n"), &prompts)
	require.NoError(t, err)
	assert.Equal(t, "B", label)
	assert.Contains(t, prompts.String(), "Please provide the sample's x1")
	assert.Contains(t, prompts.String(), "lots is not a valid value for the sample's x1")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	rcc := &rootCmdConfig{logger: newLogger(&buf, false, "")}
	rcc.Logf("hidden %d", 1)
	assert.Empty(t, buf.String())

	dir := t.TempDir()
	logFile := filepath.Join(dir, "cart.log")
	rcc.logger = newLogger(&buf, true, logFile)
	rcc.Logf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.NotContains(t, buf.String(), "\x1b[", "no colors outside terminals")
	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), `"message":"shown 2"`)
}
