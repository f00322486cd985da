package analyze

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// TextStats describes a free-text document.
type TextStats struct {
	CharCount        int
	WordCount        int
	UniqueWords      int
	SentenceCount    int
	LineCount        int
	AvgWordLength    float64
	AvgSentenceLen   float64
	TopWords         []CategoryCount
	LexicalDiversity float64
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true,
	"were": true, "and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"from": true, "as": true, "this": true, "that": true, "it": true, "its": true,
	"be": true, "been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "did": true, "i": true, "you": true, "he": true, "she": true,
	"we": true, "they": true, "not": true, "so": true, "if": true, "all": true,
	"can": true, "will": true,
}

const topWordLimit = 20

// analyzeText computes word-level statistics for a text-only input.
func analyzeText(text string) *TextStats {
	words := splitWords(text)
	sentences := splitSentences(text)
	lines := 0
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines++
		}
	}

	freq := map[string]int{}
	totalLen := 0
	unique := map[string]bool{}
	for _, w := range words {
		totalLen += len(w)
		unique[w] = true
		if !stopWords[w] && len(w) > 2 {
			freq[w]++
		}
	}

	top := make([]CategoryCount, 0, len(freq))
	for w, n := range freq {
		top = append(top, CategoryCount{Value: w, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count == top[j].Count {
			return top[i].Value < top[j].Value
		}
		return top[i].Count > top[j].Count
	})
	if len(top) > topWordLimit {
		top = top[:topWordLimit]
	}

	ts := &TextStats{
		CharCount:     len(text),
		WordCount:     len(words),
		UniqueWords:   len(unique),
		SentenceCount: len(sentences),
		LineCount:     lines,
		TopWords:      top,
	}
	if len(words) > 0 {
		ts.AvgWordLength = round2(float64(totalLen) / float64(len(words)))
		ts.LexicalDiversity = round4(float64(len(unique)) / float64(len(words)))
	}
	if len(sentences) > 0 {
		ts.AvgSentenceLen = round2(float64(len(words)) / float64(len(sentences)))
	}
	return ts
}

func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush()
			continue
		}
		b.WriteRune(r)
	}
	flush()
	return out
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
