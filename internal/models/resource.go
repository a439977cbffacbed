package models

// RouteBinding ties a registered route to the function that contributed it.
// Keeping the function name on the binding lets later registrations be traced
// back when a (method, path) pair is claimed twice.
type RouteBinding struct {
	FunctionName string          `json:"functionName" yaml:"functionName"`
	Route        RouteAnnotation `json:"route" yaml:"route"`
}

// ResourceNode is one URL path segment in the merged route tree. Siblings
// sharing a path prefix reuse the same ancestor nodes.
type ResourceNode struct {
	Segment  string                   `json:"segment" yaml:"segment"`
	Children map[string]*ResourceNode `json:"children,omitempty" yaml:"children,omitempty"`
	Methods  map[string]RouteBinding  `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// NewResourceNode creates a node for the given path segment with empty
// child and method maps.
func NewResourceNode(segment string) *ResourceNode {
	return &ResourceNode{
		Segment:  segment,
		Children: make(map[string]*ResourceNode),
		Methods:  make(map[string]RouteBinding),
	}
}
