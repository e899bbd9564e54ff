// Package lib provides functionality for keyword-based spam classification and a canned chat
// assistant built on top of it. The code lives in sub-packages:
//
//   - spamscore: the Classifier. It lowercases the text, splits it into word tokens and computes
//     spam probability as the density of spam keywords, min(spam / (total * 0.1), 1). A text
//     without tokens has zero probability. The keyword set is fixed at construction time, either
//     the built-in one (DefaultKeywords) or user-provided (LoadKeywords reads one keyword per line).
//     Config.Threshold sets the probability above which a text is spam, 0.5 by default.
//
//   - chatbot: the Responder. Email-like messages (more than 20 words, a line break or an "@")
//     are scored with the classifier and get a spam or legitimate verdict with the probability.
//     Other messages are matched against an ordered list of substring rules, first match wins,
//     and get one of the fixed replies.
//
//   - spamcheck: request and response types shared by the classifier, the responder and the web
//     api, plus LastChecks, a thread-safe history of recent checks.
//
// Both Classifier and Responder are immutable after construction and safe for concurrent use.
package lib
