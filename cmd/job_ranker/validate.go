package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-ranker/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an input document against its JSON Schema",
	Long: "Checks a candidate, profile or jobs JSON file against the embedded schema for its kind, " +
		"or against a custom schema file given with --schema.",
	RunE: runValidate,
}

var (
	validateKind   string
	validateFile   string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Document kind: candidate, profile or jobs")
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the JSON document (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to a custom JSON Schema file")

	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateKind == "" && validateSchema == "" {
		return fmt.Errorf("either --kind or --schema must be provided")
	}

	var err error
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, validateFile)
	} else {
		kind, kindErr := schemas.ParseKind(validateKind)
		if kindErr != nil {
			return kindErr
		}

		content, readErr := os.ReadFile(validateFile)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", validateFile, readErr)
		}
		err = schemas.ValidateDocument(kind, content)
	}

	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %v\n", err)
		return fmt.Errorf("%s is not valid", validateFile)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateFile)
	return nil
}
