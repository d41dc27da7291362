package parsing

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// blockSelector lists elements whose boundaries separate words in rendered text
const blockSelector = "br, p, li, div, tr, td, th, h1, h2, h3, h4, h5, h6, section, article"

// CleanText prepares free text for vectorization: markup is stripped,
// diacritics are folded and whitespace is collapsed.
func CleanText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return collapseWhitespace(FoldText(PlainText(content)))
}

// PlainText returns the visible text of an HTML fragment.
// Strings that do not look like markup are returned unchanged.
func PlainText(content string) string {
	if !looksLikeHTML(content) {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Not parseable as HTML; treat as plain text
		return content
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find(blockSelector).AppendHtml(" ")

	return doc.Text()
}

// FoldText removes diacritics so that "résumé" and "resume" compare equal.
func FoldText(content string) string {
	// The chained transformer is stateful; build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, content)
	if err != nil {
		return content
	}
	return folded
}

func looksLikeHTML(content string) bool {
	open := strings.IndexByte(content, '<')
	if open < 0 {
		return false
	}
	closing := strings.IndexByte(content[open:], '>')
	if closing <= 1 {
		return false
	}
	next := content[open+1]
	return next == '/' || next == '!' || unicode.IsLetter(rune(next))
}

func collapseWhitespace(content string) string {
	return strings.Join(strings.Fields(content), " ")
}
