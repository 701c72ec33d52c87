package lumi

import "strings"

// MaxPromptContent is the number of characters of a document included in a prompt.
const MaxPromptContent = 10000

// TruncateContent returns the first n characters of s.
// Characters are counted as runes so multi-byte text is never split.
func TruncateContent(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// FormatFilePrompt builds a prompt asking the model to answer question using
// the content of doc. Only the first MaxPromptContent characters are included.
func FormatFilePrompt(doc *Document, question string) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant. Answer based on the file content.\n\n")
	sb.WriteString("--- File Content ---\n")
	sb.WriteString(TruncateContent(doc.Content, MaxPromptContent))
	sb.WriteString("\n--------------------\n")
	sb.WriteString("\n\nUser Question: ")
	sb.WriteString(question)
	return sb.String()
}
