package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["skills"],
	"properties": {
		"skills": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "category"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"category": {"type": "string", "minLength": 1},
					"aliases": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`

func TestValidateBytes_ValidDocument(t *testing.T) {
	doc := []byte(`{"skills": [{"name": "SEO", "category": "Marketing", "aliases": ["search engine optimization"]}]}`)

	err := ValidateBytes(testSchema, doc)
	assert.NoError(t, err)
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	doc := []byte(`{"skills": [{"name": "SEO"}]}`)

	err := ValidateBytes(testSchema, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected a ValidationError, got %T", err)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateBytes_EmptySkillList(t *testing.T) {
	doc := []byte(`{"skills": []}`)

	var ve *ValidationError
	err := ValidateBytes(testSchema, doc)
	require.True(t, errors.As(err, &ve))
}

func TestValidateBytes_MalformedJSON(t *testing.T) {
	doc := []byte(`{"skills": [`)

	err := ValidateBytes(testSchema, doc)
	require.Error(t, err)

	var se *SchemaError
	assert.True(t, errors.As(err, &se), "malformed document should surface as SchemaError, got %T", err)
}

func TestValidateBytes_ErrorMessageListsFields(t *testing.T) {
	doc := []byte(`{"skills": [{"category": "Marketing"}]}`)

	err := ValidateBytes(testSchema, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "name")
}

func TestValidateFile_ReadsAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": [{"name": "PPC", "category": "Marketing"}]}`), 0o644))

	assert.NoError(t, ValidateFile(testSchema, path))
}

func TestValidateFile_MissingFile(t *testing.T) {
	err := ValidateFile(testSchema, filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	var se *SchemaError
	assert.True(t, errors.As(err, &se))
}
