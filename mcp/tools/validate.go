package tools

import (
	"github.com/spf13/cast"
	"github.com/xeipuuv/gojsonschema"
)

// validateArguments checks the required arguments of a tool and returns them
// coerced to strings. Tools without required arguments skip validation
// entirely, so stray arguments to them are ignored.
func validateArguments(e entry, args map[string]any) (map[string]string, error) {
	required := e.def.InputSchema.Required
	if len(required) == 0 {
		return map[string]string{}, nil
	}
	if args == nil {
		args = map[string]any{}
	}

	result, err := e.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return nil, &ValidationError{Param: required[0], Label: e.labels[required[0]], Reason: "could not be read: " + err.Error()}
	}
	// Only presence is enforced by the schema; values are coerced below so
	// a numeric meal id is as good as a string one.
	for _, re := range result.Errors() {
		if re.Type() != "required" {
			continue
		}
		param := cast.ToString(re.Details()["property"])
		return nil, &ValidationError{Param: param, Label: e.labels[param]}
	}

	values := make(map[string]string, len(required))
	for _, param := range required {
		value, err := cast.ToStringE(args[param])
		if err != nil {
			return nil, &ValidationError{Param: param, Label: e.labels[param], Reason: "must be a string"}
		}
		if value == "" {
			return nil, &ValidationError{Param: param, Label: e.labels[param]}
		}
		values[param] = value
	}
	return values, nil
}
