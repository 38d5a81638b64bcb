package tts

import "regexp"

// Precompiled patterns for stripping Markdown before synthesis.
var (
	emphasisPattern = regexp.MustCompile(`(\*\*|\*|__|_)`)
	headingPattern  = regexp.MustCompile(`(?m)^#+\s*`)
	artifactPattern = regexp.MustCompile("[`>~]")
)

// CleanForSpeech strips Markdown emphasis, leading heading markers, and stray
// punctuation artifacts so they are not read aloud. The stored simplified text
// keeps its Markdown; only the spoken copy passes through here.
func CleanForSpeech(text string) string {
	text = emphasisPattern.ReplaceAllString(text, "")
	text = headingPattern.ReplaceAllString(text, "")
	text = artifactPattern.ReplaceAllString(text, "")
	return text
}
