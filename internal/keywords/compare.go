package keywords

import (
	"sort"
	"strings"

	"github.com/spigell/cv-analyzer/internal/document"
)

// Compare splits the job keywords into those present in the resume (found)
// and those absent from it (missing). Both lists hold display words taken
// from jobTokens, deduplicated and sorted.
func Compare(job, resume Set, jobTokens []document.Token) (found, missing []string) {
	return DisplayWords(job.Intersect(resume), jobTokens), DisplayWords(job.Difference(resume), jobTokens)
}

// DisplayWords maps every lemma to the lowercase surface text of its first
// occurrence in tokens. Lemmas without an occurrence are skipped.
func DisplayWords(lemmas Set, tokens []document.Token) []string {
	seen := make(map[string]struct{}, len(lemmas))
	words := make([]string, 0, len(lemmas))

	for lemma := range lemmas {
		for _, tok := range tokens {
			if strings.ToLower(tok.Lemma) != lemma {
				continue
			}
			word := strings.ToLower(tok.Text)
			if _, dup := seen[word]; !dup {
				seen[word] = struct{}{}
				words = append(words, word)
			}
			break
		}
	}

	sort.Strings(words)
	return words
}
