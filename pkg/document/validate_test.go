package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string, marks ...Mark) Node {
	return Node{Type: TypeText, Text: s, Marks: marks}
}

func paragraph(children ...Node) Node {
	return Node{Type: TypeParagraph, Content: children}
}

func doc(children ...Node) Node {
	return Node{Type: TypeDoc, Content: children}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	assert.Equal(t, code, verr.Code)
}

func TestValidate(t *testing.T) {
	t.Run("accepts a typical editor document", func(t *testing.T) {
		d := doc(
			Node{Type: TypeHeading, Attrs: map[string]interface{}{"level": 1}, Content: []Node{text("Title")}},
			paragraph(text("Hello "), text("world", Mark{Type: MarkBold}, Mark{Type: MarkItalic})),
			Node{Type: TypeBulletList, Content: []Node{
				{Type: TypeListItem, Content: []Node{paragraph(text("one"))}},
				{Type: TypeListItem, Content: []Node{paragraph(text("two"))}},
			}},
			Node{Type: TypeBlockquote, Content: []Node{paragraph(text("quoted"))}},
			Node{Type: TypeCodeBlock, Content: []Node{text("x := 1")}},
			Node{Type: TypeHorizontalRule},
			paragraph(text("linked", Mark{Type: MarkLink, Attrs: map[string]interface{}{"href": "https://example.com"}})),
		)
		assert.NoError(t, Validate(&d, 0, DefaultMaxDepth))
	})

	t.Run("rejects unknown node type", func(t *testing.T) {
		d := doc(Node{Type: "carousel", Content: []Node{}})
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeUnknownNodeType)
	})

	t.Run("rejects text leaf without text", func(t *testing.T) {
		d := doc(paragraph(Node{Type: TypeText}))
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeMalformedLeaf)
	})

	t.Run("rejects text leaf carrying content", func(t *testing.T) {
		d := doc(paragraph(Node{Type: TypeText, Text: "hi", Content: []Node{text("nested")}}))
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeMalformedLeaf)
	})

	t.Run("rejects void leaf carrying content", func(t *testing.T) {
		d := doc(Node{Type: TypeHorizontalRule, Content: []Node{text("x")}})
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeMalformedLeaf)
	})

	t.Run("rejects container without content", func(t *testing.T) {
		d := doc(Node{Type: TypeParagraph})
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeMalformedContainer)
	})

	t.Run("accepts container with empty content sequence", func(t *testing.T) {
		d := doc(Node{Type: TypeParagraph, Content: []Node{}})
		assert.NoError(t, Validate(&d, 0, DefaultMaxDepth))
	})

	t.Run("rejects container carrying text", func(t *testing.T) {
		d := doc(Node{Type: TypeParagraph, Text: "hi", Content: []Node{}})
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeMalformedContainer)
	})

	t.Run("rejects unrecognized mark", func(t *testing.T) {
		d := doc(paragraph(text("hi", Mark{Type: "blink"})))
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeInvalidMark)
	})

	t.Run("rejects non-doc root", func(t *testing.T) {
		d := paragraph(text("hi"))
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeMalformedContainer)
	})

	t.Run("rejects doc below the root", func(t *testing.T) {
		d := doc(doc(paragraph(text("hi"))))
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeMalformedContainer)
	})

	t.Run("rejects nesting past the depth bound", func(t *testing.T) {
		leaf := paragraph(text("deep"))
		node := leaf
		for i := 0; i < DefaultMaxDepth+1; i++ {
			node = Node{Type: TypeBlockquote, Content: []Node{node}}
		}
		d := doc(node)
		assertCode(t, Validate(&d, 0, DefaultMaxDepth), CodeDepthExceeded)
	})

	t.Run("stays within a raised depth bound", func(t *testing.T) {
		node := paragraph(text("deep"))
		for i := 0; i < 10; i++ {
			node = Node{Type: TypeBlockquote, Content: []Node{node}}
		}
		d := doc(node)
		assert.NoError(t, Validate(&d, 0, 20))
		assertCode(t, Validate(&d, 0, 5), CodeDepthExceeded)
	})
}
