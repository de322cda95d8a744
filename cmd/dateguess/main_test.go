package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/dateguess/datefmt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out, errOut bytes.Buffer
	cmd, err := newRootCmd()
	require.NoError(t, err)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

func TestClassifyText(t *testing.T) {
	out, err := run(t, "classify", "03/10/1990", "1990-03-25")
	require.NoError(t, err)

	assert.Contains(t, out, `"03/10/1990"`)
	assert.Contains(t, out, "ambiguous")
	assert.Contains(t, out, "MM/dd/yyyy")
	assert.Contains(t, out, "dd/MM/yyyy")
	assert.Contains(t, out, "yyyy-MM-dd")
	assert.Less(t, strings.Index(out, "MM/dd/yyyy"), strings.Index(out, "dd/MM/yyyy"))
}

func TestClassifyJSONLocale(t *testing.T) {
	out, err := run(t, "classify", "--json", "--locale", "en-GB", "03/10/1990")
	require.NoError(t, err)

	var results []datefmt.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, []string{"dd/MM/yyyy", "MM/dd/yyyy"}, results[0].Templates())
}

func TestClassifyLocaleFromEnv(t *testing.T) {
	t.Setenv("DATEGUESS_LOCALE", "de")
	out, err := run(t, "classify", "--json", "03.10.1990")
	require.NoError(t, err)

	var results []datefmt.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, "dd.MM.yyyy", results[0].Templates()[0])
}

func TestClassifyBlank(t *testing.T) {
	out, err := run(t, "classify", "   ")
	require.NoError(t, err)
	assert.Contains(t, out, "no interpretation")
}

func TestClassifyErrors(t *testing.T) {
	_, err := run(t, "classify", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input")

	_, err = run(t, "classify")
	require.Error(t, err)

	_, err = run(t, "--mode", "staging", "classify", "9 AM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestLocales(t *testing.T) {
	out, err := run(t, "locales")
	require.NoError(t, err)
	assert.Contains(t, out, "TAG")
	assert.Contains(t, out, "en-GB")
	assert.Contains(t, out, "DMY")
}

func TestBindFlags(t *testing.T) {
	a := &app{v: viper.New()}
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("known", "x", "")

	a.bindFlags(cmd, false, "known")
	require.NoError(t, a.bindErr)

	a.bindFlags(cmd, false, "missing", "known")
	require.Error(t, a.bindErr)
	assert.Contains(t, a.bindErr.Error(), "failed to bind flag missing")
}
