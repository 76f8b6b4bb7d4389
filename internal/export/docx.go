// Package export writes translated transcripts as styled docx documents.
package export

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// WriteTranscript writes the dialogue lines to a docx file with a bold
// title paragraph. Callers pass dialogue only; structural subtitle lines
// (indices, timestamps, separators) must already be stripped.
func WriteTranscript(title string, dialogue []string, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(titleSize).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, line := range dialogue {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
