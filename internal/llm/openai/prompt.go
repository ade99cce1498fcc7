package openai

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = `You are a procurement document analyst. Read the RFP text and respond with a single JSON object, no markdown, matching this schema exactly:
{
  "executive_summary": string (at most 200 words),
  "fields": object mapping field names (e.g. "RFP #", "Buyer", "Closing Date") to string values,
  "compliance_checklist": object mapping checklist item names to booleans,
  "download_links": object mapping link titles to URLs found in the document
}
Omit nothing; use empty objects when a section has no content. Never invent URLs.`

const systemPromptPlain = `You are a procurement document analyst. Output raw JSON only: one object with keys executive_summary (string, at most 200 words), fields (object of strings), compliance_checklist (object of booleans), download_links (object of URL strings). No markdown fences, no commentary.`

// buildPrompt creates the chat messages for the primary request shape.
func buildPrompt(text string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "RFP document text:\n" + text},
	}
}

// buildPlainPrompt creates the alternate request shape, used once when the
// primary shape fails: same backend, no structured-output mode, stricter
// raw-JSON instruction.
func buildPlainPrompt(text string) []Message {
	return []Message{
		{Role: "system", Content: systemPromptPlain},
		{Role: "user", Content: "RFP document text:\n" + text},
	}
}
