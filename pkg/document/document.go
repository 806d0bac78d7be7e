package document

// Node is one node of a rich-text document tree as produced by the
// editor: a root "doc" node containing block nodes, down to "text"
// leaves. Container kinds carry Content, text leaves carry Text; the
// two never appear together on the same node.
type Node struct {
	Type    NodeType               `json:"type"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Content []Node                 `json:"content,omitempty"`
	Marks   []Mark                 `json:"marks,omitempty"`
	Text    string                 `json:"text,omitempty"`
}

// Mark describes inline formatting applied to a text leaf
type Mark struct {
	Type  MarkType               `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// NodeType tags a node with its kind
type NodeType string

const (
	TypeDoc            NodeType = "doc"
	TypeParagraph      NodeType = "paragraph"
	TypeHeading        NodeType = "heading"
	TypeBlockquote     NodeType = "blockquote"
	TypeBulletList     NodeType = "bulletList"
	TypeOrderedList    NodeType = "orderedList"
	TypeListItem       NodeType = "listItem"
	TypeCodeBlock      NodeType = "codeBlock"
	TypeHorizontalRule NodeType = "horizontalRule"
	TypeHardBreak      NodeType = "hardBreak"
	TypeText           NodeType = "text"
)

// MarkType tags a mark with its kind
type MarkType string

const (
	MarkBold      MarkType = "bold"
	MarkItalic    MarkType = "italic"
	MarkStrike    MarkType = "strike"
	MarkCode      MarkType = "code"
	MarkUnderline MarkType = "underline"
	MarkLink      MarkType = "link"
)

// containerTypes holds the kinds whose children live in Content
var containerTypes = map[NodeType]bool{
	TypeDoc:         true,
	TypeParagraph:   true,
	TypeHeading:     true,
	TypeBlockquote:  true,
	TypeBulletList:  true,
	TypeOrderedList: true,
	TypeListItem:    true,
	TypeCodeBlock:   true,
}

// voidTypes holds leaf kinds that carry neither children nor text
var voidTypes = map[NodeType]bool{
	TypeHorizontalRule: true,
	TypeHardBreak:      true,
}

var knownMarks = map[MarkType]bool{
	MarkBold:      true,
	MarkItalic:    true,
	MarkStrike:    true,
	MarkCode:      true,
	MarkUnderline: true,
	MarkLink:      true,
}

// IsContainer reports whether t is a container kind
func (t NodeType) IsContainer() bool {
	return containerTypes[t]
}

// IsKnown reports whether t belongs to the recognized vocabulary
func (t NodeType) IsKnown() bool {
	return t == TypeText || containerTypes[t] || voidTypes[t]
}

// IsKnown reports whether m belongs to the recognized mark vocabulary
func (m MarkType) IsKnown() bool {
	return knownMarks[m]
}
