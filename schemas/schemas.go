// Package schemas embeds the JSON Schemas for the CLI's input documents.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Schema file names
const (
	Candidate = "candidate.schema.json"
	Profile   = "profile.schema.json"
	Jobs      = "jobs.schema.json"
)

// All lists every embedded schema file.
var All = []string{Candidate, Profile, Jobs}

// Read returns the contents of an embedded schema file.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema %s: %w", name, err)
	}
	return data, nil
}
