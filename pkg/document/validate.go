package document

import "fmt"

// Validation error codes. Every rejection carries exactly one of these
// so callers can surface the specific reason instead of a generic 400.
const (
	CodeEmptyTitle         = "EMPTY_TITLE"
	CodeUnknownNodeType    = "UNKNOWN_NODE_TYPE"
	CodeMalformedLeaf      = "MALFORMED_LEAF"
	CodeMalformedContainer = "MALFORMED_CONTAINER"
	CodeInvalidMark        = "INVALID_MARK"
	CodeDepthExceeded      = "DEPTH_EXCEEDED"
)

// ValidationError is a caller-fixable rejection of a post submission
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func reject(code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// DefaultMaxDepth bounds document nesting. The editor never produces
// trees anywhere near this deep; anything beyond it is a pathological
// payload.
const DefaultMaxDepth = 64

// Validate checks that node is a well-formed document tree. Callers
// start at depth 0, where only the "doc" root kind is accepted. The
// walk is depth-first and fail-fast: the first offending node rejects
// the whole tree. Validate has no side effects.
func Validate(node *Node, depth, maxDepth int) error {
	if depth > maxDepth {
		return reject(CodeDepthExceeded, "document exceeds maximum depth %d", maxDepth)
	}

	if !node.Type.IsKnown() {
		return reject(CodeUnknownNodeType, "unrecognized node type %q", node.Type)
	}

	// The root kind appears exactly once, at the top
	if depth == 0 && node.Type != TypeDoc {
		return reject(CodeMalformedContainer, "document root must be %q, got %q", TypeDoc, node.Type)
	}
	if depth > 0 && node.Type == TypeDoc {
		return reject(CodeMalformedContainer, "%q node allowed only at the root", TypeDoc)
	}

	for _, mark := range node.Marks {
		if !mark.Type.IsKnown() {
			return reject(CodeInvalidMark, "unrecognized mark type %q", mark.Type)
		}
	}

	switch {
	case node.Type == TypeText:
		if node.Text == "" {
			return reject(CodeMalformedLeaf, "text node requires non-empty text")
		}
		if node.Content != nil {
			return reject(CodeMalformedLeaf, "text node must not carry content")
		}
	case node.Type.IsContainer():
		if node.Text != "" {
			return reject(CodeMalformedContainer, "%q node must not carry text", node.Type)
		}
		if node.Content == nil {
			return reject(CodeMalformedContainer, "%q node requires content", node.Type)
		}
		for i := range node.Content {
			if err := Validate(&node.Content[i], depth+1, maxDepth); err != nil {
				return err
			}
		}
	default:
		// void leaf (horizontalRule, hardBreak)
		if node.Text != "" {
			return reject(CodeMalformedLeaf, "%q node must not carry text", node.Type)
		}
		if node.Content != nil {
			return reject(CodeMalformedLeaf, "%q node must not carry content", node.Type)
		}
	}

	return nil
}
