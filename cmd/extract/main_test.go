package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricelist/internal/docx/docxtest"
)

func writeDocx(t *testing.T) string {
	t.Helper()
	data := docxtest.New().
		Table(2, []string{"Legend", ""}).
		Table(5,
			[]string{"PRODUCT", "SRP", "DEALER", "", ""},
			[]string{"SKU1\nWidget A", "200", "150.00", "", ""},
		).
		Bytes()
	path := filepath.Join(t.TempDir(), "list.docx")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestExtract_Stdout(t *testing.T) {
	stdout, _, err := execute(t, writeDocx(t))
	require.NoError(t, err)
	assert.Equal(t, `[{"code":"SKU1","description":"Widget A","dealerPrice":"150.00"}]`+"\n", stdout)
}

func TestExtract_OutputFilePretty(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "data.json")

	_, stderr, err := execute(t, writeDocx(t), "-o", out, "--pretty", "--stats")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {\n    \"code\": \"SKU1\",")
	assert.Contains(t, stderr, "products: 1")
	assert.Contains(t, stderr, "skipped header_row: 1")
}

func TestExtract_CSV(t *testing.T) {
	stdout, _, err := execute(t, writeDocx(t), "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "code,description,dealerPrice\nSKU1,Widget A,150.00\n")
}

func TestExtract_Errors(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "missing.docx"))
	assert.Error(t, err)

	_, _, err = execute(t, writeDocx(t), "--format", "pdf")
	assert.Error(t, err)

	_, _, err = execute(t)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.docx")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	_, _, err = execute(t, bad)
	assert.ErrorContains(t, err, "invalid docx document")
}
