package lib_test

import (
	"fmt"
	"strings"

	"github.com/snehiltiwari001/ChatBotAI/lib/chatbot"
	"github.com/snehiltiwari001/ChatBotAI/lib/spamcheck"
	"github.com/snehiltiwari001/ChatBotAI/lib/spamscore"
)

// ExampleNewClassifier demonstrates how to make a classifier and check email content.
func ExampleNewClassifier() {
	classifier := spamscore.NewClassifier(spamscore.Config{})

	fmt.Println(classifier.Check("free money winner"))
	fmt.Println(classifier.Check("hello how are you today"))
	// Output:
	// spam, spam:1.00, ham:0.00
	// ham, spam:0.00, ham:1.00
}

// ExampleLoadKeywords demonstrates a classifier with custom keywords and threshold.
func ExampleLoadKeywords() {
	keywords, err := spamscore.LoadKeywords(strings.NewReader("# crypto scams\nbitcoin\nwallet\n"))
	if err != nil {
		fmt.Println("Error loading keywords:", err)
		return
	}
	classifier := spamscore.NewClassifier(spamscore.Config{Keywords: keywords, Threshold: 0.95})

	// one keyword out of eleven tokens
	fmt.Println(classifier.Check("send your bitcoin to this address and we will double it"))
	// Output:
	// ham, spam:0.91, ham:0.09
}

// ExampleNewResponder demonstrates how the chat assistant replies to messages.
func ExampleNewResponder() {
	responder := chatbot.NewResponder(spamscore.NewClassifier(spamscore.Config{}))

	reply := responder.Reply("Hi there")
	fmt.Println(reply.Kind, reply.Text)

	reply = responder.Reply("Congratulations! You won a lottery prize, send your bank account to claim@example.com")
	fmt.Printf("%s %.1f\n", reply.Kind, reply.Probability)
	// Output:
	// greeting Hello! I'm your spam classification assistant. How can I help you today?
	// spam 1.0
}

// ExampleLastChecks demonstrates the history of recent checks.
func ExampleLastChecks() {
	history := spamcheck.NewLastChecks(2)
	history.Push(spamcheck.Check{Kind: spamcheck.KindClassify, Text: "first"})
	history.Push(spamcheck.Check{Kind: spamcheck.KindChat, Text: "second", Spam: true, Probability: 1})
	history.Push(spamcheck.Check{Kind: spamcheck.KindClassify, Text: "third"})

	for _, c := range history.Last(10) {
		fmt.Println(c.String())
	}
	// Output:
	// classify: ham (0.0%), text:"third"
	// chat: spam (100.0%), text:"second"
}
