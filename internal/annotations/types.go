package annotations

// Directive markers recognized inside handler comment blocks. One directive
// per line, order-independent within a block.
const (
	DirectiveRoute       = "@route"
	DirectiveAuth        = "@auth"
	DirectiveRateLimit   = "@rateLimit"
	DirectiveTimeout     = "@timeout"
	DirectiveMemory      = "@memory"
	DirectiveDescription = "@description"
)

// blockState tracks where the line scanner is relative to an annotation
// block. The scanner starts out awaiting a directive; the first directive
// line opens a block, and a handler declaration line closes it.
type blockState int

const (
	awaitingDirective blockState = iota
	blockOpen
)
