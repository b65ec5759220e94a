package llm

import (
	"os"
	"path/filepath"
	"testing"
	"text/template"

	"github.com/stretchr/testify/require"
)

func TestNewPromptTemplate(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := NewPromptTemplate("", nil)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewPromptTemplate(filepath.Join(t.TempDir(), "nope.tmpl"), nil)
		require.ErrorContains(t, err, "read prompt template")
	})

	t.Run("file backed render", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "daily.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("Analyze {{.Date}}: {{.Data}}"), 0o644))

		tmpl, err := NewPromptTemplate(path, nil)
		require.NoError(t, err)

		out, err := tmpl.Render(map[string]string{"Date": "2024-01-15", "Data": "{}"})
		require.NoError(t, err)
		require.Equal(t, "Analyze 2024-01-15: {}", out)
	})
}

func TestNewPromptTemplateFromString(t *testing.T) {
	tmpl, err := NewPromptTemplateFromString("weekly", "Week of {{.Data}}", nil)
	require.NoError(t, err)

	out, err := tmpl.Render(map[string]string{"Data": "entries"})
	require.NoError(t, err)
	require.Equal(t, "Week of entries", out)

	_, err = NewPromptTemplateFromString("broken", "{{.Unclosed", nil)
	require.Error(t, err)
}

func TestPromptTemplateFuncs(t *testing.T) {
	funcs := template.FuncMap{
		"upper": func(s string) string { return "UPPER:" + s },
	}
	tmpl, err := NewPromptTemplateFromString("funcs", `{{upper .Data}}`, funcs)
	require.NoError(t, err)

	out, err := tmpl.Render(map[string]string{"Data": "x"})
	require.NoError(t, err)
	require.Equal(t, "UPPER:x", out)
}

func TestPromptTemplateMissingKey(t *testing.T) {
	tmpl, err := NewPromptTemplateFromString("strict", "{{.Missing}}", nil)
	require.NoError(t, err)

	_, err = tmpl.Render(map[string]string{"Data": "x"})
	require.Error(t, err)
}

func TestPromptTemplateReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("v1 {{.Data}}"), 0o644))

	tmpl, err := NewPromptTemplate(path, nil)
	require.NoError(t, err)
	firstDigest := tmpl.Digest()
	require.NotEmpty(t, firstDigest)

	require.NoError(t, os.WriteFile(path, []byte("v2 {{.Data}}"), 0o644))
	require.NoError(t, tmpl.Reload())

	out, err := tmpl.Render(map[string]string{"Data": "x"})
	require.NoError(t, err)
	require.Equal(t, "v2 x", out)
	require.NotEqual(t, firstDigest, tmpl.Digest())
}
