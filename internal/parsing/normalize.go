// Package parsing turns candidate profiles and job postings into normalized text and skill names.
package parsing

import (
	"strings"
)

// skillAliases maps common skill name variants to canonical lowercase names
var skillAliases = map[string]string{
	"golang":     "go",
	"go lang":    "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"nodejs":     "node.js",
	"node":       "node.js",
	"postgres":   "postgresql",
	"psql":       "postgresql",
	"py":         "python",
	"ml":         "machine learning",
	"gcp":        "google cloud",

	"amazon web services": "aws",
}

// NormalizeSkillName returns the canonical lowercase form of a skill name.
// Whitespace is trimmed and collapsed; known aliases map to one name.
// Only vocabulary lookups use the alias table; skill matching compares SkillKey values.
func NormalizeSkillName(skillName string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(skillName), " "))
	if normalized == "" {
		return ""
	}

	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// SkillKey is the comparison form of a skill name: trimmed and lowercased, nothing else.
func SkillKey(skillName string) string {
	return strings.ToLower(strings.TrimSpace(skillName))
}

// UniqueSkills returns the SkillKey of every name, dropping blanks and
// case-insensitive duplicates. The first occurrence wins, so the result keeps input order.
func UniqueSkills(skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}

	unique := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		key := SkillKey(skill)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	return unique
}
