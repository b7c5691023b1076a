package slack

import "strings"

// Message is the JSON body accepted by incoming webhooks. Text is the
// notification fallback shown when blocks cannot be rendered.
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Block is a Block Kit layout block.
type Block struct {
	Type     string       `json:"type"`
	Text     *TextObject  `json:"text,omitempty"`
	Fields   []TextObject `json:"fields,omitempty"`
	Elements []TextObject `json:"elements,omitempty"`
}

// TextObject is a plain_text or mrkdwn composition object.
type TextObject struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// PlainText returns a plain_text object with emoji rendering enabled.
func PlainText(text string) TextObject {
	return TextObject{Type: "plain_text", Text: text, Emoji: true}
}

// Markdown returns a mrkdwn object.
func Markdown(text string) TextObject {
	return TextObject{Type: "mrkdwn", Text: text}
}

// Header returns a header block.
func Header(text string) Block {
	t := PlainText(text)
	return Block{Type: "header", Text: &t}
}

// Section returns a section block with a single text object.
func Section(text TextObject) Block {
	return Block{Type: "section", Text: &text}
}

// Fields returns a section block laid out as two-column fields.
func Fields(fields ...TextObject) Block {
	return Block{Type: "section", Fields: fields}
}

// Context returns a context block.
func Context(elements ...TextObject) Block {
	return Block{Type: "context", Elements: elements}
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeText escapes the three characters Slack treats as control
// sequences in message text.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
