package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakuxiko/answerchain/internal/model"
)

func TestAnswerTemplate(t *testing.T) {
	r := NewAnswerTemplate()

	t.Run("Render is deterministic", func(t *testing.T) {
		req := model.AnswerRequest{Question: "Who is the CEO of Neo4j?", Context: "Neo4j CEO: Emil Eifrem"}

		first, err := r.Render(req)
		require.NoError(t, err)
		second, err := r.Render(req)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Values follow their labels", func(t *testing.T) {
		req := model.AnswerRequest{Question: "Who is the CEO of Neo4j?", Context: "Neo4j CEO: Emil Eifrem"}

		out, err := r.Render(req)
		require.NoError(t, err)

		q := strings.Index(out, "Question:")
		require.GreaterOrEqual(t, q, 0)
		assert.True(t, strings.HasPrefix(strings.TrimLeft(out[q+len("Question:"):], " \n"), req.Question))

		c := strings.Index(out, "Context:")
		require.Greater(t, c, q)
		assert.True(t, strings.HasPrefix(strings.TrimLeft(out[c+len("Context:"):], " \n"), req.Context))
	})

	t.Run("Values are not escaped", func(t *testing.T) {
		req := model.AnswerRequest{
			Question: `<b>"quoted"</b> & more`,
			Context:  "line one\nline two 'single'",
		}

		out, err := r.Render(req)
		require.NoError(t, err)

		assert.Contains(t, out, req.Question)
		assert.Contains(t, out, req.Context)
	})

	t.Run("Placeholder text in values is not expanded", func(t *testing.T) {
		req := model.AnswerRequest{Question: "what is {{.Context}}?", Context: "{question} {{.Question}}"}

		out, err := r.Render(req)
		require.NoError(t, err)

		assert.Contains(t, out, "what is {{.Context}}?")
		assert.Contains(t, out, "{question} {{.Question}}")
	})

	t.Run("Instructions are present", func(t *testing.T) {
		out, err := r.Render(model.AnswerRequest{Question: "q", Context: "c"})
		require.NoError(t, err)

		assert.Contains(t, out, "Use only the following context")
		assert.Contains(t, out, "Do not use your pre-trained knowledge.")
		assert.Contains(t, out, "just say that you don't know")
		assert.Contains(t, out, "Include links and sources where possible.")
	})
}

func TestNew(t *testing.T) {
	t.Run("Custom template", func(t *testing.T) {
		r, err := New("short", "Q={{.Question}} C={{.Context}}")
		require.NoError(t, err)
		assert.Equal(t, "short", r.Name())

		out, err := r.Render(model.AnswerRequest{Question: "a", Context: "b"})
		require.NoError(t, err)
		assert.Equal(t, "Q=a C=b", out)
	})

	t.Run("Invalid template", func(t *testing.T) {
		_, err := New("broken", "Q={{.Question}")
		assert.Error(t, err)
	})

	t.Run("Unknown field fails at render", func(t *testing.T) {
		r, err := New("unknown", "{{.Answer}}")
		require.NoError(t, err)

		_, err = r.Render(model.AnswerRequest{Question: "a", Context: "b"})
		assert.Error(t, err)
	})
}
