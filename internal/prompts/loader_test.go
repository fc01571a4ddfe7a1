package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(AdvertFile, "job-advert")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Talent Acquisition Partner")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(AdvertFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet(AdvertFile, "benefits-global")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, welcome to {{.Company}}!"
	data := map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	}

	result := Format(template, data)
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}

func TestFormat_ValuesAreNotReexpanded(t *testing.T) {
	template := "A={{.A}} B={{.B}}"
	data := map[string]string{
		"A": "{{.B}}",
		"B": "{{.A}}",
	}

	for i := 0; i < 20; i++ {
		assert.Equal(t, "A={{.B}} B={{.A}}", Format(template, data))
	}
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List(AdvertFile)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"benefits-budapest",
		"benefits-budapest-relocation",
		"benefits-denver",
		"benefits-denver-relocation",
		"benefits-global",
		"benefits-remote",
		"job-advert",
	}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get(AdvertFile, "job-advert")
	require.NoError(t, err)

	prompt2, err := Get(AdvertFile, "job-advert")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}

func TestAdvertTemplate_Placeholders(t *testing.T) {
	ClearCache()

	prompt, err := Get(AdvertFile, "job-advert")
	require.NoError(t, err)

	for _, placeholder := range []string{"{{.JobTitle}}", "{{.RawNotes}}", "{{.Location}}", "{{.Relocation}}", "{{.Benefits}}"} {
		assert.Contains(t, prompt, placeholder)
	}
}
