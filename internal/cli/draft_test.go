package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDraftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{testTemplateDir, "testdata/data.json"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Late Delivery and Penalty.")
	assert.Contains(t, output, "for every 2 days of delay penalty amounting to 10.5%")
	assert.Contains(t, output, "exceed 55% of the total value")
	assert.NotContains(t, output, "Force Majeure")
}

func TestDraftJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewDraftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{testTemplateDir, "testdata/data.json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   DraftResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "latedeliveryandpenalty", resp.Data.Template)
	assert.Equal(t, "0.1.0", resp.Data.Version)
	assert.Equal(t, "clause-281", resp.Data.ClauseID)
	assert.Contains(t, resp.Data.Text, "for every 2 days of delay")
}

func TestDraftToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "contract.md")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDraftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{testTemplateDir, "testdata/data.json", "-o", outPath})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Wrote "+outPath)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "Late Delivery and Penalty.")
}

func TestDraftRejectedParameters(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDraftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{testTemplateDir, "testdata/bad-cap.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E006]")
}

func TestDraftMissingParametersFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDraftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{testTemplateDir, "testdata/absent.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E002]")
}

func TestDraftMissingTemplate(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDraftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/no-such-template", "testdata/data.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E005]")
}
