package models

// LambdaFunctionMetadata represents one source file with at least one
// discovered route.
type LambdaFunctionMetadata struct {
	FunctionName string            `json:"functionName" yaml:"functionName"`
	FilePath     string            `json:"filePath" yaml:"filePath"`
	HandlerName  string            `json:"handlerName" yaml:"handlerName"`
	Routes       []RouteAnnotation `json:"routes" yaml:"routes"`
	Dependencies []string          `json:"dependencies" yaml:"dependencies"`
}
