package analyze

import (
	"math"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"
	"github.com/jonreiter/govader"
	"go.uber.org/zap"

	"truthguard/internal/domain"
)

const (
	// Inputs shorter than this (after trimming) are not analyzable.
	minAnalyzableLen = 10
	maxTokens        = 20
	previewLen       = 300
)

// Analyzer computes the lexical and sentiment signals for a piece of text.
type Analyzer struct {
	sentiment *govader.SentimentIntensityAnalyzer
	logger    *zap.Logger
}

func NewAnalyzer(logger *zap.Logger) *Analyzer {
	return &Analyzer{
		sentiment: govader.NewSentimentIntensityAnalyzer(),
		logger:    logger,
	}
}

// Analyze tokenizes text, scores its sentiment and sensational-language
// indicators, and classifies the result. Inputs shorter than 10 characters
// yield the degenerate uncertain result and skip all further analysis.
func (a *Analyzer) Analyze(text string) domain.Analysis {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < minAnalyzableLen {
		return domain.Analysis{
			Tokens:    []string{},
			Sentiment: 0.0,
			Label:     domain.LabelUncertain,
			Preview:   "",
		}
	}

	tokens := a.tokenize(text)
	polarity := a.polarity(text)

	indicators := countLexicalHits(tokens) + countPunctuationHits(text) + capsIndicator(text)

	if len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}
	if tokens == nil {
		tokens = []string{}
	}

	return domain.Analysis{
		Tokens:     tokens,
		Sentiment:  math.Round(polarity*10000) / 10000,
		Indicators: indicators,
		Label:      Classify(indicators, polarity),
		Preview:    preview(trimmed),
	}
}

// tokenize lowercases the alphabetic tokens of text and removes English
// stopwords. If the tokenizer fails it falls back to naive whitespace
// splitting (without stopword removal) rather than failing the request.
func (a *Analyzer) tokenize(text string) []string {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		a.logger.Warn("tokenizer unavailable, falling back to whitespace split", zap.Error(err))
		return fallbackTokenize(text)
	}

	// The part-of-speech tags prose assigns during tokenization are a
	// best-effort pass kept for potential future use; only the token text
	// feeds the indicator scoring.
	var tokens []string
	for _, tok := range doc.Tokens() {
		if !isAlphabetic(tok.Text) {
			continue
		}
		word := strings.ToLower(tok.Text)
		if isStopword(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func fallbackTokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		if isAlphabetic(field) {
			tokens = append(tokens, strings.ToLower(field))
		}
	}
	return tokens
}

// polarity scores the original untokenized text; any degenerate score
// defaults to 0.0.
func (a *Analyzer) polarity(text string) float64 {
	score := a.sentiment.PolarityScores(text).Compound
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0.0
	}
	return score
}

// countLexicalHits counts tokens containing any sensational-vocabulary
// word as a substring.
func countLexicalHits(tokens []string) int {
	hits := 0
	for _, token := range tokens {
		for _, word := range sensationalWords {
			if strings.Contains(token, word) {
				hits++
				break
			}
		}
	}
	return hits
}

func countPunctuationHits(text string) int {
	return (strings.Count(text, "!") + strings.Count(text, "?")) / 2
}

// capsIndicator returns 1 when more than one whitespace-delimited word is
// all-uppercase and longer than 3 characters.
func capsIndicator(text string) int {
	shouted := 0
	for _, word := range strings.Fields(text) {
		if len([]rune(word)) > 3 && isShouted(word) {
			shouted++
		}
	}
	if shouted > 1 {
		return 1
	}
	return 0
}

// isShouted reports whether word has at least one cased character and no
// lowercase ones.
func isShouted(word string) bool {
	hasUpper := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isStopword(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}

// preview returns the first 300 characters of the trimmed text with
// newlines collapsed to spaces and a truncation marker when cut.
func preview(trimmed string) string {
	runes := []rune(trimmed)
	if len(runes) <= previewLen {
		return strings.ReplaceAll(trimmed, "\n", " ")
	}
	return strings.ReplaceAll(string(runes[:previewLen]), "\n", " ") + "…"
}
