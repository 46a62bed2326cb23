package swift

import "github.com/goccy/go-json"

// nodeJSON is the wire shape of a node. Kinds encode as their names via
// NodeKind's text marshalling.
type nodeJSON struct {
	Kind     NodeKind `json:"kind"`
	Text     string   `json:"text,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

// MarshalJSON encodes the subtree rooted at n.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{Kind: n.kind, Text: n.text, Children: n.children})
}

// UnmarshalJSON decodes a subtree encoded by MarshalJSON. The decoded node
// comes back unlinked and owning its children; null entries in a children
// array are dropped.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.kind = raw.Kind
	n.text = raw.Text
	n.children = nil
	n.parent = nil
	n.parentIndex = 0
	for _, c := range raw.Children {
		if c == nil {
			continue
		}
		n.AddChild(c)
	}
	return nil
}
