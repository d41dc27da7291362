package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ranker/internal/logger"
	"github.com/jonathan/job-ranker/internal/parsing"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "List the known skills mentioned in a text",
	Long: "Finds skill vocabulary terms in free text, HTML or a resume file. " +
		"Reads --text, --file, or standard input when neither is given.",
	RunE: runExtractSkills,
}

var (
	extractText string
	extractFile string
)

// extractedSkills is the JSON output of extract-skills
type extractedSkills struct {
	Skills []string `json:"skills"`
}

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractText, "text", "t", "", "Text to scan")
	extractSkillsCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a text or HTML file to scan")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	if extractText != "" && extractFile != "" {
		return fmt.Errorf("--text and --file are mutually exclusive; provide only one")
	}

	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	// 1. Read input
	text := extractText
	if text == "" {
		text, err = readText(cmd, pick(extractFile, "-"))
		if err != nil {
			return err
		}
	}

	// 2. Extract from cleaned text
	found := rt.engine.ExtractSkills(parsing.CleanText(text))
	rt.log.Debug("extracted skills",
		zap.String("input", logger.TruncateForLog(text, 80)),
		zap.Int("skills", len(found)),
	)

	if rt.printer != nil {
		rt.printer.PrintSkills(found, rt.dict.Category)
	}

	return writeOutput(cmd, "", extractedSkills{Skills: found})
}
