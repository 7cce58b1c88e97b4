package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureModel = filepath.Join("..", "..", "internal", "app", "infra", "model", "catboost", "testdata", "model.json")

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath = ""

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestPredictCommand(t *testing.T) {
	out, err := runCommand(t, "predict",
		"--model", fixtureModel,
		"--temperature", "25",
		"--co", "0.5",
		"--no2", "0.02",
		"--humidity", "60",
		"--pop-density", "1000",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Temperature CO           12.5\n")
	assert.Contains(t, out, "CO Population_Density    500\n")
	assert.Contains(t, out, "prediction               Good\n")
}

func TestPredictCommandPoor(t *testing.T) {
	out, err := runCommand(t, "predict",
		"--model", fixtureModel,
		"--temperature", "25",
		"--co", "2",
		"--no2", "0.1",
		"--humidity", "40",
		"--pop-density", "1000",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "prediction               Poor\n")
}

func TestPredictCommandRequiresFlags(t *testing.T) {
	_, err := runCommand(t, "predict", "--model", fixtureModel, "--co", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestPredictCommandMissingModel(t *testing.T) {
	_, err := runCommand(t, "predict",
		"--model", filepath.Join(t.TempDir(), "missing.json"),
		"--temperature", "1", "--co", "1", "--no2", "1", "--humidity", "1", "--pop-density", "1",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load model failed")
}

func TestInitializeAppFailsWithoutModel(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("model:\n  path: "+filepath.Join(dir, "none.json")+"\n"), 0o600))
	configPath = cfgFile

	cfg, err := loadConfig()
	require.NoError(t, err)

	_, _, err = InitializeApp(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load model failed")
}

func TestInitializeApp(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	body := "app:\n  env: test\n  log_level: error\nmodel:\n  path: " + fixtureModel + "\nmetrics:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(body), 0o600))
	configPath = cfgFile

	cfg, err := loadConfig()
	require.NoError(t, err)

	app, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, 2, app.Model.NumTrees())
	assert.NotNil(t, app.Handler)
	assert.False(t, app.Draining.Load())
}
