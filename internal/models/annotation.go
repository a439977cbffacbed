package models

// HTTP methods accepted by the @route directive.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
	MethodPatch  = "PATCH"
)

// Auth levels accepted by the @auth directive.
const (
	AuthRequired = "required"
	AuthOptional = "optional"
	AuthNone     = "none"
)

// RouteAnnotation represents one complete route directive block discovered in
// a handler source file. A block is only materialized once both method and
// path have been captured; everything else is optional.
type RouteAnnotation struct {
	Method      string `json:"method" yaml:"method"`
	Path        string `json:"path" yaml:"path"`
	Auth        string `json:"auth" yaml:"auth"`
	RateLimit   string `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	Timeout     *int   `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	MemorySize  *int   `json:"memorySize,omitempty" yaml:"memorySize,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	CORS        bool   `json:"cors" yaml:"cors"`
}

// IsValidMethod reports whether the (already upper-cased) method is one of
// the recognized HTTP methods.
func IsValidMethod(method string) bool {
	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return true
	}
	return false
}
