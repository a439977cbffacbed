package models

// RouteEntry is one row of the flattened route list in the artifact. It is a
// denormalized convenience view derived purely from the function list.
type RouteEntry struct {
	FunctionName string `json:"functionName" yaml:"functionName"`
	Method       string `json:"method" yaml:"method"`
	Path         string `json:"path" yaml:"path"`
	Auth         string `json:"auth" yaml:"auth"`
	RateLimit    string `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	Timeout      *int   `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	MemorySize   *int   `json:"memorySize,omitempty" yaml:"memorySize,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
}

// RoutesConfig is the serialized artifact handed to the provisioning layer.
// Everything in it is regenerated from scratch on every scan.
type RoutesConfig struct {
	GeneratedAt string                   `json:"generatedAt" yaml:"generatedAt"`
	Functions   []LambdaFunctionMetadata `json:"functions" yaml:"functions"`
	Routes      []RouteEntry             `json:"routes" yaml:"routes"`
}
