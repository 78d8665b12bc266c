// Package tool exposes translation as tools that an agent orchestrator can call.
package tool

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required argument is missing or has the wrong type.
var ErrInvalidArgument = errors.New("tool: invalid argument")

// Argument names.
const (
	ArgQuery          = "query"
	ArgFilePath       = "file_path"
	ArgTargetLanguage = "target_language"
)

// Tool defines the interface that all tools must implement.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description for the LLM.
	Description() string

	// Parameters returns the JSON schema for the tool's parameters.
	Parameters() map[string]any

	// Execute runs the tool with the given arguments and returns the result.
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// stringArg reads args[name]. A missing key reports ok=false; a value of
// another type is an error.
func stringArg(args map[string]any, name string) (value string, ok bool, err error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidArgument, name, raw)
	}
	return s, true, nil
}

func requiredString(args map[string]any, name string) (string, error) {
	s, ok, err := stringArg(args, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
	}
	return s, nil
}

func optionalString(args map[string]any, name, fallback string) (string, error) {
	s, ok, err := stringArg(args, name)
	if err != nil {
		return "", err
	}
	if !ok || s == "" {
		return fallback, nil
	}
	return s, nil
}

func stringProperty(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}
