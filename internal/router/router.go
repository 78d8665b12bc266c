// Package router routes tool invocations to the registered tool.
package router

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pricofy/azure-translator/internal/tool"
)

// ErrUnknownTool is returned by Dispatch for a name that was never registered.
var ErrUnknownTool = errors.New("router: unknown tool")

// Router routes tool calls by name.
type Router struct {
	tools map[string]tool.Tool
}

// New creates a Router over tools. Names must be unique and non-empty.
func New(tools ...tool.Tool) (*Router, error) {
	r := &Router{tools: make(map[string]tool.Tool, len(tools))}
	for _, t := range tools {
		name := t.Name()
		if name == "" {
			return nil, fmt.Errorf("tool with empty name")
		}
		if _, dup := r.tools[name]; dup {
			return nil, fmt.Errorf("duplicate tool %q", name)
		}
		r.tools[name] = t
	}
	return r, nil
}

// Has reports whether a tool is registered under name.
func (r *Router) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// Tool returns the tool registered under name.
func (r *Router) Tool(name string) (tool.Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named tool with args.
func (r *Router) Dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.Execute(ctx, args)
}
