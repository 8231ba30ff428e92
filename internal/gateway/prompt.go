package gateway

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/hpn/bizspeak-gateway/internal/domain"
)

// DefaultPromptTemplate asks the model to restate technical text for a
// business audience. It ends on the assistant turn so the completion is the
// rewritten text only.
const DefaultPromptTemplate = "\n\nHuman: You are an expert communicator who translates technical jargon " +
	"into clear, concise business language for a non-technical audience. " +
	"Rewrite the following technical text so that a business stakeholder can understand " +
	"what it means and why it matters. Keep the meaning accurate, avoid acronyms unless you " +
	"explain them, and respond with the rewritten text only.\n\n" +
	"Technical text:\n<text>\n{{.Text}}\n</text>" +
	"\n\nAssistant:"

// PromptData is the data passed to the prompt template.
type PromptData struct {
	Text string
}

// PromptRenderer renders the instruction template around user text.
type PromptRenderer struct {
	tpl *template.Template
}

// NewPromptRenderer parses body, falling back to DefaultPromptTemplate when body is empty.
// The rendered prompt must contain the human and assistant turn markers.
func NewPromptRenderer(body string) (*PromptRenderer, error) {
	if body == "" {
		body = DefaultPromptTemplate
	}
	tpl, err := template.New("prompt").Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	r := &PromptRenderer{tpl: tpl}

	probe, err := r.Render("probe")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(probe, domain.HumanTurnMarker) || !strings.HasSuffix(probe, domain.AssistantTurnMarker) {
		return nil, fmt.Errorf("prompt template must start with %q and end with %q",
			domain.HumanTurnMarker, domain.AssistantTurnMarker)
	}
	return r, nil
}

// Render executes the template for text.
func (r *PromptRenderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, PromptData{Text: text}); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}
