// Package chatbot implements the spam assistant replies. Messages resembling an email
// (long, multi-line or containing @) are scored by the spam classifier and answered with
// a verdict, any other message is matched against an ordered list of canned replies.
package chatbot

import (
	"fmt"
	"strings"
	"unicode"
)

// maxChatWords is the number of words above which a message is treated as an email
const maxChatWords = 20

// Kind is a kind of reply
type Kind string

// enum of reply kinds
const (
	KindSpam       Kind = "spam"
	KindHam        Kind = "ham"
	KindGreeting   Kind = "greeting"
	KindDefinition Kind = "definition"
	KindIdentify   Kind = "identify"
	KindHelp       Kind = "help"
	KindThanks     Kind = "thanks"
	KindFarewell   Kind = "farewell"
	KindDefault    Kind = "default"
)

// Scorer is a spam classifier used for email-like messages
type Scorer interface {
	Probability(text string) float64
	IsSpam(prob float64) bool
}

// Reply is a response to a chat message.
type Reply struct {
	Text        string  // reply text
	Kind        Kind    // which rule produced the reply
	Scored      bool    // true if the message was scored by the classifier
	Probability float64 // spam probability, set only if Scored
}

// Responder picks a reply for a chat message, thread-safe.
type Responder struct {
	scorer Scorer
	rules  []rule
}

// rule is a canned reply returned if match reports true
type rule struct {
	kind  Kind
	match func(msg string) bool
	text  string
}

// NewResponder makes a responder scoring email-like messages with the given scorer
func NewResponder(scorer Scorer) *Responder {
	return &Responder{scorer: scorer, rules: cannedRules()}
}

// Reply returns a reply for the message. Email-like messages get a spam verdict,
// others get the first matching canned reply or the default one.
func (r *Responder) Reply(msg string) Reply {
	msg = strings.ToLower(msg)

	if IsEmailLike(msg) {
		prob := r.scorer.Probability(msg)
		if r.scorer.IsSpam(prob) {
			return Reply{Text: fmt.Sprintf(spamVerdict, prob*100), Kind: KindSpam, Scored: true, Probability: prob}
		}
		return Reply{Text: fmt.Sprintf(hamVerdict, prob*100), Kind: KindHam, Scored: true, Probability: prob}
	}

	for _, rl := range r.rules {
		if rl.match(msg) {
			return Reply{Text: rl.text, Kind: rl.kind}
		}
	}
	return Reply{Text: defaultReply, Kind: KindDefault}
}

// IsEmailLike reports whether the message looks like pasted email content rather than a chat message
func IsEmailLike(msg string) bool {
	return len(strings.FieldsFunc(msg, isSpace)) > maxChatWords || strings.Contains(msg, "\n") || strings.Contains(msg, "@")
}

// isSpace extends unicode.IsSpace with the ascii file, group, record and unit separators
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// cannedRules returns rules in priority order, first match wins.
// Matching is by substring, "hi" matches "this" as well.
func cannedRules() []rule {
	return []rule{
		{kind: KindGreeting, match: anyOf("hello", "hi", "hey"), text: greetingReply},
		{kind: KindDefinition, match: allOf("spam", "what"), text: definitionReply},
		{kind: KindIdentify, match: allOf("how", "identify"), text: identifyReply},
		{kind: KindHelp, match: anyOf("help"), text: helpReply},
		{kind: KindThanks, match: anyOf("thank"), text: thanksReply},
		{kind: KindFarewell, match: anyOf("bye", "goodbye"), text: farewellReply},
	}
}

func anyOf(subs ...string) func(string) bool {
	return func(msg string) bool {
		for _, s := range subs {
			if strings.Contains(msg, s) {
				return true
			}
		}
		return false
	}
}

func allOf(subs ...string) func(string) bool {
	return func(msg string) bool {
		for _, s := range subs {
			if !strings.Contains(msg, s) {
				return false
			}
		}
		return true
	}
}
