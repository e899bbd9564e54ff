package chatbot

const spamVerdict = "I've analyzed this email and it appears to be SPAM (probability: %.1f%%).\n\n" +
	"This email contains characteristics commonly found in spam messages, such as:\n" +
	"- Promotional language ('transformative', 'incredible opportunity')\n" +
	"- Urgency ('don't miss out')\n" +
	"- Multiple domains or topics mentioned\n" +
	"- Call to action ('click here to apply')\n\n" +
	"I recommend being cautious with this email and not clicking on any links."

const hamVerdict = "I've analyzed this email and it appears to be legitimate (spam probability: %.1f%%).\n\n" +
	"This email seems to be from a legitimate source about internship opportunities. " +
	"However, always verify the sender and be cautious with any links or attachments."

const greetingReply = "Hello! I'm your spam classification assistant. How can I help you today?"

const definitionReply = "Spam emails are unsolicited messages that often contain misleading information, " +
	"scams, or unwanted advertisements. They can be identified by suspicious sender addresses, " +
	"urgent language, or requests for personal information."

const identifyReply = "To identify spam emails, look for: 1) Suspicious sender addresses, " +
	"2) Urgent or threatening language, 3) Requests for personal information, " +
	"4) Too-good-to-be-true offers, 5) Poor grammar or formatting, and 6) Unusual attachments."

const helpReply = "I can help you identify spam emails. Just paste the email content in the chat or " +
	"in the main interface and click \"Classify Email\" to analyze it. " +
	"You can also ask me questions about spam detection and email security."

const thanksReply = "You're welcome! Feel free to ask if you have any other questions about spam detection or email security."

const farewellReply = "Goodbye! Stay safe from spam emails!"

const defaultReply = "I'm your spam classification assistant. You can paste email content in the chat or " +
	"in the main interface to analyze it for spam, or ask me questions about spam detection and email security."
