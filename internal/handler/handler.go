// Package handler provides the Lambda handler through which an agent
// orchestrator invokes the translation tools.
package handler

import (
	"context"
	"fmt"

	"github.com/pricofy/azure-translator/internal/router"
	"github.com/pricofy/azure-translator/internal/tool"
	"go.uber.org/zap"
)

// Request is a single tool invocation.
type Request struct {
	Tool       string         `json:"tool"`
	Input      string         `json:"input"`
	TargetLang string         `json:"targetLang,omitempty"`
	Args       map[string]any `json:"args,omitempty"`
}

// Response is the tool output, or Error when the invocation failed.
type Response struct {
	Tool   string `json:"tool"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// inputArgs maps each tool to the argument that Request.Input fills.
var inputArgs = map[string]string{
	tool.TextToolName:     tool.ArgQuery,
	tool.DocumentToolName: tool.ArgFilePath,
}

// Handler routes requests to tools.
type Handler struct {
	router *router.Router
	logger *zap.Logger
}

// New creates a Handler.
func New(r *router.Router, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{router: r, logger: logger}
}

// Handle processes a tool invocation.
// Failures are reported in Response.Error; the returned error is reserved
// for the Lambda runtime and is always nil.
func (h *Handler) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return &Response{Tool: req.Tool, Error: err.Error()}, nil
	}

	if !h.router.Has(req.Tool) {
		return &Response{
			Tool:  req.Tool,
			Error: fmt.Sprintf("unknown tool %q, available: %v", req.Tool, h.router.Names()),
		}, nil
	}

	out, err := h.router.Dispatch(ctx, req.Tool, buildArgs(req))
	if err != nil {
		h.logger.Error("Tool invocation failed", zap.String("tool", req.Tool), zap.Error(err))
		return &Response{Tool: req.Tool, Error: err.Error()}, nil
	}

	return &Response{Tool: req.Tool, Output: out}, nil
}

// buildArgs merges the convenience fields into the tool arguments.
// Explicit Args entries win.
func buildArgs(req Request) map[string]any {
	args := make(map[string]any, len(req.Args)+2)
	if name, ok := inputArgs[req.Tool]; ok && req.Input != "" {
		args[name] = req.Input
	}
	if req.TargetLang != "" {
		args[tool.ArgTargetLanguage] = req.TargetLang
	}
	for k, v := range req.Args {
		args[k] = v
	}
	return args
}

// validateRequest checks the request is valid.
func validateRequest(req Request) error {
	if req.Tool == "" {
		return fmt.Errorf("tool is required")
	}
	if req.Input == "" && len(req.Args) == 0 {
		return fmt.Errorf("input is required")
	}
	if req.Tool == tool.DocumentToolName && req.TargetLang == "" && req.Args[tool.ArgTargetLanguage] == nil {
		return fmt.Errorf("targetLang is required")
	}
	return nil
}
