package priorities

import (
	"regexp"
	"strings"
)

// functionWords are skipped when grouping sentence tokens into noun-phrase
// chunks. Content nouns like "experience" or "knowledge" deliberately stay:
// "Python experience" should survive as one phrase.
var functionWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "but": {}, "nor": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "from": {}, "by": {},
	"with": {}, "for": {}, "as": {}, "into": {}, "over": {}, "under": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "having": {},
	"will": {}, "would": {}, "should": {}, "could": {}, "can": {}, "may": {},
	"might": {}, "must": {}, "shall": {},
	"you": {}, "your": {}, "we": {}, "our": {}, "they": {}, "their": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"who": {}, "which": {}, "what": {}, "while": {}, "when": {}, "where": {},
	"also": {}, "plus": {}, "both": {}, "any": {}, "some": {}, "such": {},
}

// chunkTokenPattern keeps technology-name punctuation (C++, C#, Node.js,
// CI/CD is split by the slash) so chunks read the way the source text wrote
// them.
var chunkTokenPattern = regexp.MustCompile(`[A-Za-z0-9#+.-]+`)

// nounChunks approximates noun-phrase chunking without a grammatical parser:
// contiguous runs of non-function-word tokens form one chunk, preserving the
// sentence's original casing and order.
func nounChunks(sentence string) []string {
	tokens := chunkTokenPattern.FindAllString(sentence, -1)

	var chunks []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunk := strings.TrimSpace(strings.Join(current, " "))
		if chunk != "" && hasLetter(chunk) {
			chunks = append(chunks, chunk)
		}
		current = nil
	}

	for _, token := range tokens {
		cleaned := strings.Trim(token, ".-")
		if cleaned == "" {
			flush()
			continue
		}
		if _, ok := functionWords[strings.ToLower(cleaned)]; ok {
			flush()
			continue
		}
		current = append(current, cleaned)
	}
	flush()

	return chunks
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
