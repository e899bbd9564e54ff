// Package spamscore scores text for spam with a keyword density heuristic.
// The text is lowercased and split into word tokens (letters, digits and underscore),
// tokens found in the keyword set are counted, and the probability grows linearly with
// keyword density, saturating at 1.0 when 10% of the tokens are keywords.
//
// Classifier is immutable after creation and safe for concurrent use.
package spamscore

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/snehiltiwari001/ChatBotAI/lib/spamcheck"
)

// DefaultThreshold is the spam probability a text has to exceed to be reported as spam
const DefaultThreshold = 0.5

// keyword density at which probability reaches 1.0
const densityFactor = 0.1

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Classifier is a keyword density spam classifier.
type Classifier struct {
	keywords  map[string]struct{}
	threshold float64
}

// Config is a set of parameters for Classifier.
type Config struct {
	Keywords  []string // spam keywords, built-in set used if empty
	Threshold float64  // spam threshold, 0.0 - 1.0, DefaultThreshold used if 0
}

// NewClassifier makes a classifier with given config
func NewClassifier(cfg Config) *Classifier {
	kws := cfg.Keywords
	if len(kws) == 0 {
		kws = defaultKeywords
	}
	res := &Classifier{keywords: make(map[string]struct{}, len(kws)), threshold: cfg.Threshold}
	for _, kw := range kws {
		res.keywords[strings.ToLower(kw)] = struct{}{}
	}
	if res.threshold <= 0 {
		res.threshold = DefaultThreshold
	}
	return res
}

// Probability returns spam probability of the text, always in [0.0, 1.0].
// Text without any word tokens has zero probability.
func (c *Classifier) Probability(text string) float64 {
	spam, total := c.count(text)
	if total == 0 {
		return 0.0
	}
	return math.Min(float64(spam)/(float64(total)*densityFactor), 1.0)
}

// Check classifies the text and returns both spam and ham probabilities
func (c *Classifier) Check(text string) spamcheck.ClassifyResponse {
	prob := c.Probability(text)
	return spamcheck.ClassifyResponse{
		IsSpam:          c.IsSpam(prob),
		SpamProbability: prob,
		HamProbability:  1 - prob,
	}
}

// IsSpam reports whether the probability is above the classifier threshold
func (c *Classifier) IsSpam(prob float64) bool {
	return prob > c.threshold
}

// Threshold returns the spam threshold
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// Keywords returns sorted list of keywords
func (c *Classifier) Keywords() []string {
	res := make([]string, 0, len(c.keywords))
	for kw := range c.keywords {
		res = append(res, kw)
	}
	sort.Strings(res)
	return res
}

// count returns the number of keyword tokens and the total number of tokens
func (c *Classifier) count(text string) (spam, total int) {
	for _, token := range tokenize(text) {
		total++
		if _, ok := c.keywords[token]; ok {
			spam++
		}
	}
	return spam, total
}

// tokenize lowercases the text and returns all runs of word characters
func tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}
