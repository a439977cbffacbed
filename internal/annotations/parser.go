package annotations

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/peterboddev/vibespacdemo-sub001/internal/models"
)

// Parser extracts route annotation blocks from handler source text. It is a
// line-oriented two-state machine: directive lines accumulate fields into a
// pending block, and a handler declaration line closes the block, emitting a
// RouteAnnotation when both method and path were captured.
//
// A Parser carries no state between Parse calls; construct one per pipeline
// and share it across files.
type Parser struct {
	route *participle.Parser[routeArgs]
}

// NewParser creates an annotation parser.
func NewParser() *Parser {
	return &Parser{route: newRouteParser()}
}

// pending accumulates directive fields for the block currently being read.
type pending struct {
	method      string
	path        string
	auth        string
	rateLimit   string
	timeout     *int
	memorySize  *int
	description string
	hasRoute    bool
}

func (p *pending) reset() {
	*p = pending{}
}

// materialize turns the accumulator into a RouteAnnotation, filling defaults.
func (p *pending) materialize() models.RouteAnnotation {
	auth := p.auth
	if auth == "" {
		auth = models.AuthNone
	}
	return models.RouteAnnotation{
		Method:      p.method,
		Path:        p.path,
		Auth:        auth,
		RateLimit:   p.rateLimit,
		Timeout:     p.timeout,
		MemorySize:  p.memorySize,
		Description: p.description,
		CORS:        true,
	}
}

// Parse scans source text and returns every complete route annotation block
// in source order. Blocks missing a @route directive are dropped silently; a
// dangling block at end of file is discarded.
func (p *Parser) Parse(source string) []models.RouteAnnotation {
	var (
		routes []models.RouteAnnotation
		acc    pending
		state  = awaitingDirective
	)

	for _, raw := range strings.Split(source, "\n") {
		line := normalizeLine(raw)

		switch state {
		case awaitingDirective:
			if directive, rest := splitDirective(line); directive != "" {
				if p.applyDirective(&acc, directive, rest) {
					state = blockOpen
				}
			}

		case blockOpen:
			if looksLikeHandlerDeclaration(line) {
				if acc.hasRoute {
					routes = append(routes, acc.materialize())
				}
				acc.reset()
				state = awaitingDirective
				continue
			}
			if directive, rest := splitDirective(line); directive != "" {
				p.applyDirective(&acc, directive, rest)
			}
		}
	}

	// A block still open at end of file never met its handler declaration,
	// so whatever accumulated is discarded.
	return routes
}

// applyDirective folds one directive line into the accumulator. It returns
// true when the directive captured a value, which opens (or keeps open) the
// current block.
func (p *Parser) applyDirective(acc *pending, directive, rest string) bool {
	switch directive {
	case DirectiveRoute:
		args, err := p.route.ParseString("", rest)
		if err != nil {
			return false
		}
		method := strings.ToUpper(args.Method)
		if !models.IsValidMethod(method) {
			return false
		}
		acc.method = method
		acc.path = args.Path
		acc.hasRoute = true
		return true

	case DirectiveAuth:
		value := strings.ToLower(firstField(rest))
		switch value {
		case models.AuthRequired, models.AuthOptional, models.AuthNone:
			acc.auth = value
			return true
		}
		return false

	case DirectiveRateLimit:
		if rest == "" {
			return false
		}
		acc.rateLimit = rest
		return true

	case DirectiveTimeout:
		if v, err := strconv.Atoi(firstField(rest)); err == nil {
			acc.timeout = &v
			return true
		}
		// unparseable values are treated as absent, not as a failure
		return false

	case DirectiveMemory:
		if v, err := strconv.Atoi(firstField(rest)); err == nil {
			acc.memorySize = &v
			return true
		}
		return false

	case DirectiveDescription:
		if rest == "" {
			return false
		}
		acc.description = rest
		return true
	}

	return false
}

// looksLikeHandlerDeclaration reports whether a line ends the current
// annotation block by declaring the associated handler. The acceptance
// condition is deliberately loose: the line must contain the export-const
// declaration keyword, an assignment operator, and the async marker.
func looksLikeHandlerDeclaration(line string) bool {
	return strings.Contains(line, "export const") &&
		strings.Contains(line, "=") &&
		strings.Contains(line, "async")
}

// normalizeLine trims surrounding whitespace and leading comment decoration
// so that directive lines inside both // and /** ... */ comment styles start
// at their @ marker.
func normalizeLine(raw string) string {
	line := strings.TrimSpace(raw)
	for {
		switch {
		case strings.HasPrefix(line, "//"):
			line = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "/*"):
			line = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "*"):
			line = strings.TrimSpace(line[1:])
		default:
			return line
		}
	}
}

// splitDirective splits a normalized line into its directive marker and the
// remaining argument text. Lines that do not begin with a recognized marker
// yield an empty directive.
func splitDirective(line string) (directive, rest string) {
	if !strings.HasPrefix(line, "@") {
		return "", ""
	}
	word := line
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		word = line[:i]
		rest = strings.TrimSpace(line[i+1:])
	}
	switch word {
	case DirectiveRoute, DirectiveAuth, DirectiveRateLimit,
		DirectiveTimeout, DirectiveMemory, DirectiveDescription:
		return word, rest
	}
	return "", ""
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
