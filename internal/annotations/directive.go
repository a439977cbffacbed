package annotations

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// routeArgs is the participle grammar for the arguments of a @route
// directive: an HTTP method followed by a URL path template. Path templates
// keep their {param} placeholders verbatim.
type routeArgs struct {
	Method string `parser:"@Ident"`
	Path   string `parser:"@Path"`
}

var routeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Path", Pattern: `/[^\s]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// newRouteParser builds the parser for @route directive arguments. Each
// annotation Parser owns its own instance; there is no package-level shared
// parser.
func newRouteParser() *participle.Parser[routeArgs] {
	return participle.MustBuild[routeArgs](
		participle.Lexer(routeLexer),
		participle.Elide("Whitespace"),
	)
}
