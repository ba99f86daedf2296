// Package prompt renders the instruction sent to the model for a question and
// its context.
package prompt

import (
	"bytes"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/katakuxiko/answerchain/internal/model"
)

// AnswerTemplate is the fixed instruction used for grounded answers.
// Question and Context are inserted in a single pass; their contents are
// never parsed as template text.
const AnswerTemplate = `
    Use only the following context to answer the following question.

    Question:
    {{.Question}}

    Context:
    {{.Context}}

    Answer as if you have been asked the original question.
    Do not use your pre-trained knowledge.

    If you don't know the answer, just say that you don't know, don't try to make up an answer.
    Include links and sources where possible.
  `

// Renderer turns a request into prompt text.
type Renderer interface {
	Render(req model.AnswerRequest) (string, error)
}

// Template is a Renderer backed by text/template.
type Template struct {
	name string
	tmpl *template.Template
}

// New parses text as a template with .Question and .Context fields.
func New(name, text string) (*Template, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "parse prompt template %q", name)
	}
	return &Template{name: name, tmpl: t}, nil
}

// NewAnswerTemplate returns the renderer for AnswerTemplate.
func NewAnswerTemplate() *Template {
	t, err := New("answer", AnswerTemplate)
	if err != nil {
		// constant template, cannot fail
		panic(err)
	}
	return t
}

func (t *Template) Name() string { return t.name }

// Render executes the template. Values are written as-is, without escaping.
func (t *Template) Render(req model.AnswerRequest) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, req); err != nil {
		return "", errors.Wrapf(err, "render prompt template %q", t.name)
	}
	return buf.String(), nil
}
