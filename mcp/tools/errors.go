package tools

import "fmt"

// ValidationError reports a required argument that is missing, empty, or
// cannot be read as a string.
type ValidationError struct {
	Param  string
	Label  string
	Reason string
}

func (e *ValidationError) Error() string {
	label := e.Label
	if label == "" {
		label = e.Param + " parameter"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", label, e.Reason)
	}
	return label + " is required"
}

// UnknownToolError reports a call to a name the registry does not hold.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// ErrorText renders an error the way it appears inside an isError result.
func ErrorText(err error) string {
	if err == nil {
		return "Error: Unknown error occurred"
	}
	return "Error: " + err.Error()
}
