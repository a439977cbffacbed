package resources

import (
	"strings"

	"github.com/peterboddev/vibespacdemo-sub001/internal/models"
)

// Builder merges discovered routes into a single path-segment tree. Routes
// sharing a URL prefix share the corresponding prefix nodes; segments are
// compared as literal strings, so {param} placeholders are ordinary tokens.
//
// Each pipeline run constructs its own Builder; nothing is cached across
// invocations.
type Builder struct {
	root *models.ResourceNode
}

// NewBuilder creates a builder with an empty root node representing "/".
func NewBuilder() *Builder {
	return &Builder{root: models.NewResourceNode("")}
}

// AddFunction registers every route of a function in declaration order.
func (b *Builder) AddFunction(fn models.LambdaFunctionMetadata) {
	for _, route := range fn.Routes {
		b.Register(fn.FunctionName, route)
	}
}

// Register walks the tree along the route's path, creating nodes as needed,
// and binds the route to the terminal node under its HTTP method. When two
// functions claim the same (method, path) pair the later registration wins
// silently.
func (b *Builder) Register(functionName string, route models.RouteAnnotation) {
	node := b.root
	for _, segment := range strings.Split(route.Path, "/") {
		if segment == "" {
			continue
		}
		child, ok := node.Children[segment]
		if !ok {
			child = models.NewResourceNode(segment)
			node.Children[segment] = child
		}
		node = child
	}

	node.Methods[route.Method] = models.RouteBinding{
		FunctionName: functionName,
		Route:        route,
	}
}

// Root returns the root of the merged tree.
func (b *Builder) Root() *models.ResourceNode {
	return b.root
}

// NodeCount returns the number of nodes in the tree, root included.
func (b *Builder) NodeCount() int {
	return countNodes(b.root)
}

func countNodes(node *models.ResourceNode) int {
	total := 1
	for _, child := range node.Children {
		total += countNodes(child)
	}
	return total
}
