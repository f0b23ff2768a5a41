// Package notetext turns the free-text annotation blob attached to a
// problem into five normalized, display-ready sections.
package notetext

import (
	"strings"
)

// Sentinel is returned for every section when the lead-in label is not
// present at all. Total parse failure is a well-defined outcome, not an
// error.
const Sentinel = "None"

// Sections holds the decomposed annotation text. Every field is a fully
// formatted display string (title + content), never a raw fragment.
type Sections struct {
	ClarifyQuestions string
	Edgecases        string
	Approaches       string
	Mistakes         string
	Note             string
}

// labels in the order they may appear. the first one is mandatory, the
// rest are optional. matching is case-insensitive.
var labels = []string{
	"clarify questions:",
	"edgecases:",
	"approaches:",
	"mistakes:",
	"note:",
}

type span struct {
	start, end int
}

// indexAtLineStart finds the first occurrence of label at or after from
// that sits at the beginning of a line. A label mentioned mid-sentence
// inside a section must not terminate it.
func indexAtLineStart(text, label string, from int) int {
	for {
		idx := strings.Index(text[from:], label)
		if idx < 0 {
			return -1
		}
		pos := from + idx
		if pos == 0 || text[pos-1] == '\n' {
			return pos
		}
		from = pos + 1
	}
}

// sectionSpans locates each label in order and returns the content range
// of every section. A section runs from the end of its label to the start
// of the next label found, or to the end of the text. Absent sections
// have start == -1.
func sectionSpans(raw string) []span {
	lower := strings.ToLower(raw)

	spans := make([]span, len(labels))
	for i := range spans {
		spans[i] = span{start: -1, end: -1}
	}

	cursor := 0
	prev := -1
	for i, label := range labels {
		labelPos := indexAtLineStart(lower, label, cursor)
		if labelPos < 0 {
			continue
		}
		if prev >= 0 {
			spans[prev].end = labelPos
		}
		cursor = labelPos + len(label)
		spans[i] = span{start: cursor, end: len(raw)}
		prev = i
	}
	return spans
}

// Decompose scans raw for the ordered, optionally-omitted section labels
// and returns the content of each as a formatted block. If the mandatory
// "clarify questions:" label is absent, all five sections are the
// Sentinel value.
func Decompose(raw string) Sections {
	spans := sectionSpans(raw)

	if spans[0].start < 0 {
		return Sections{
			ClarifyQuestions: Sentinel,
			Edgecases:        Sentinel,
			Approaches:       Sentinel,
			Mistakes:         Sentinel,
			Note:             Sentinel,
		}
	}

	content := func(i int) string {
		if spans[i].start < 0 {
			return ""
		}
		return raw[spans[i].start:spans[i].end]
	}

	return Sections{
		ClarifyQuestions: formatBullets("🔹 Clarify Questions", content(0)),
		Edgecases:        formatBullets("🔹 Edge Cases", content(1)),
		Approaches:       formatFreeText("🔹 Approaches", content(2)),
		Mistakes:         formatBullets("🔹 Mistakes", content(3)),
		Note:             formatFreeText("🔹 Note", content(4)),
	}
}

// cleanLines trims whitespace and "- " bullet markers and drops blank
// lines.
func cleanLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "- "))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func formatBullets(title, text string) string {
	lines := cleanLines(text)
	if len(lines) == 0 {
		return title + ":\n  - " + Sentinel
	}
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":")
	for _, line := range lines {
		b.WriteString("\n  - ")
		b.WriteString(line)
	}
	return b.String()
}

func formatFreeText(title, text string) string {
	lines := cleanLines(text)
	if len(lines) == 0 {
		return title + ":\n" + Sentinel
	}
	return title + ":\n" + lines[0]
}
