package assistant

// systemInstruction declares the two directive grammars to the model.
// Kept minimal so the percent-encoded prompt stays within URL length limits.
const systemInstruction = "System: You are a helpful assistant. " +
	"To create a note, start reply with: [ACTION:NOTE|Title|Content]. " +
	"To create an event, start reply with: [ACTION:EVENT|Title|Time Description]. " +
	"Otherwise, just reply normally."

// BuildPrompt concatenates the fixed instruction, the context block and the
// literal user message. User content is not escaped against the instruction
// boundary; this is a known prompt-injection surface.
func BuildPrompt(contextBlock, userMessage string) string {
	return systemInstruction + "\nContext:\n" + contextBlock + "\nUser: " + userMessage + "\nAssistant:"
}
