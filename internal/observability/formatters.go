// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most limit runes, marking the cut with "..."
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// PrintCandidate outputs the candidate signals used for scoring.
func (p *Printer) PrintCandidate(title string, skills []string, years int) {
	var sb strings.Builder

	if title == "" {
		title = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Title:      %s\n", title))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", years))

	if len(skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:     %s", strings.Join(skills, ", ")))
	} else {
		sb.WriteString("Skills:     (none)")
	}

	p.printBox("CANDIDATE", sb.String())
}

// PrintScoredJobs outputs the top scored jobs with their breakdowns.
func (p *Printer) PrintScoredJobs(jobs []types.ScoredJob, poolSize, minScore int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Kept %d of %d jobs (min score %d)\n", len(jobs), poolSize, minScore))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString("\n")
		writeJob(&sb, i+1, jobs[i].Job, jobs[i].ScoreBreakdown)
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("SCORED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the ranked recommendations.
func (p *Printer) PrintRecommendations(jobs []types.RankedJob) {
	if len(jobs) == 0 {
		p.printBox("RECOMMENDATIONS", "No job scored above the recommendation floor.")
		return
	}

	var sb strings.Builder
	for i, job := range jobs {
		writeJob(&sb, i+1, job.Job, job.ScoreBreakdown)
		if i < len(jobs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs extracted skills grouped by vocabulary category.
func (p *Printer) PrintSkills(skills []string, category func(string) string) {
	if len(skills) == 0 {
		p.printBox("EXTRACTED SKILLS", "No known skills found.")
		return
	}

	groups := make(map[string][]string)
	var order []string
	for _, skill := range skills {
		c := ""
		if category != nil {
			c = category(skill)
		}
		if c == "" {
			c = "other"
		}
		if _, seen := groups[c]; !seen {
			order = append(order, c)
		}
		groups[c] = append(groups[c], skill)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n", len(skills)))
	for _, c := range order {
		sb.WriteString(fmt.Sprintf("\n%s:\n", c))
		for _, skill := range groups[c] {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs one line per batch request.
func (p *Printer) PrintBatchSummary(ids []string, kept []int, errs []string) {
	var sb strings.Builder
	for i, id := range ids {
		if errs[i] != "" {
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", id, errs[i]))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s: %d jobs\n", id, kept[i]))
	}
	p.printBox("BATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeJob(sb *strings.Builder, rank int, job types.Job, b types.ScoreBreakdown) {
	title := job.Title
	if job.Company != "" {
		title = fmt.Sprintf("%s @ %s", title, job.Company)
	}
	sb.WriteString(fmt.Sprintf("#%d  %s  [%d]\n", rank, title, b.MatchScore))
	sb.WriteString(fmt.Sprintf("    semantic %d · skills %d · title %d · exp %d\n",
		b.SemanticScore, b.SkillScore, b.TitleScore, b.ExperienceScore))
	if len(b.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("    Matched: %s\n", strings.Join(b.MatchedSkills, ", ")))
	}
	if len(b.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("    Missing: %s\n", strings.Join(b.MissingSkills, ", ")))
	}
}
