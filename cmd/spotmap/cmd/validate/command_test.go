package validate

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
)

func execute(t *testing.T, app application.Application, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewCommand(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func jsonApp(cat func() (catalogs.Reader, error)) *application.Mock {
	return &application.Mock{
		CatalogFunc:      cat,
		OutputFormatFunc: func() string { return "json" },
	}
}

func TestValidate_Embedded(t *testing.T) {
	app := jsonApp(func() (catalogs.Reader, error) { return catalogs.New() })

	out, stderr, err := execute(t, app, "--strict")
	require.NoError(t, err)
	assert.Contains(t, stderr, "catalog is valid")

	var report catalogs.AuditReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Empty(t, report.Issues)
	assert.Equal(t, 4, report.Regions)
}

func TestValidate_Drift(t *testing.T) {
	// Test regions claim 0 spots, so tokyo and chiba drift.
	app := jsonApp(func() (catalogs.Reader, error) { return catalogs.ScenarioCatalog(t), nil })

	out, stderr, err := execute(t, app)
	require.NoError(t, err)
	assert.Contains(t, stderr, "audit found 2 issue(s)")

	var report catalogs.AuditReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Issues, 2)
	assert.Equal(t, catalogs.AuditSpotCountDrift, report.Issues[0].Kind)

	_, _, err = execute(t, app, "--strict")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestValidate_LoadFailure(t *testing.T) {
	app := jsonApp(func() (catalogs.Reader, error) {
		return nil, &errors.IOError{Operation: "read", Path: "catalog", Err: errors.ErrNotFound}
	})

	_, stderr, err := execute(t, app)
	require.Error(t, err)
	assert.Contains(t, stderr, "catalog failed to load")
}
