package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range All {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := Read(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range All {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := Read(schemaFile)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}

func TestRead_Unknown(t *testing.T) {
	_, err := Read("missing.schema.json")
	assert.Error(t, err)
}

func TestSchemas_SampleDocuments(t *testing.T) {
	tests := []struct {
		schema string
		doc    string
		valid  bool
	}{
		{Candidate, `{"skills": ["python", "sql"], "title": "Data Analyst", "experience_years": 3}`, true},
		{Candidate, `{}`, true},
		{Candidate, `{"experience_years": -1}`, false},
		{Candidate, `{"skills": "python"}`, false},
		{Profile, `{"skills": ["Go", {"name": "SQL", "proficiency": "expert"}, {"skill": "AWS", "level": "advanced"}]}`, true},
		{Profile, `{"skills": [{"proficiency": "expert"}]}`, false},
		{Profile, `{"experience": [{"title": "Engineer", "current": "yes"}]}`, false},
		{Jobs, `[{"id": "1", "title": "Backend Engineer", "skills": ["Go"]}]`, true},
		{Jobs, `[]`, true},
		{Jobs, `{"title": "Backend Engineer"}`, false},
		{Jobs, `[{"skills_required": [1, 2]}]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.schema+"/"+tt.doc, func(t *testing.T) {
			data, err := Read(tt.schema)
			require.NoError(t, err)

			result, err := gojsonschema.Validate(
				gojsonschema.NewBytesLoader(data),
				gojsonschema.NewStringLoader(tt.doc),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid(), "%v", result.Errors())
		})
	}
}
