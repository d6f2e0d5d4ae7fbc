package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rptlabs/counterpose/internal/catalog"
	"github.com/rptlabs/counterpose/internal/store"
	"github.com/rptlabs/counterpose/internal/workflow"
)

type tools struct {
	svc *workflow.Service
}

// result serializes v as a JSON tool result.
func result(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// workflowError renders workflow errors as tool error payloads rather than
// protocol failures, so clients see them uniformly.
func workflowError(err error) (*mcp.CallToolResult, error) {
	var invalid *workflow.InvalidInputError
	if errors.Is(err, store.ErrSessionNotFound) || errors.As(err, &invalid) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return nil, err
}

func (t *tools) start(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Reasoning string `json:"reasoning"`
		SessionID string `json:"session_id"`
	}
	if err := req.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.Reasoning == "" {
		return mcp.NewToolResultError("reasoning is required"), nil
	}
	if args.SessionID == "" {
		args.SessionID = uuid.NewString()
	}

	res, err := t.svc.SubmitReasoning(ctx, args.SessionID, args.Reasoning)
	if err != nil {
		return workflowError(err)
	}
	return result(res)
}

func (t *tools) selectPersonas(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		SessionID string   `json:"session_id"`
		Personas  []string `json:"personas"`
	}
	if err := req.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := t.svc.SelectPersonas(ctx, args.SessionID, args.Personas)
	if err != nil {
		return workflowError(err)
	}
	return result(res)
}

func (t *tools) submitCritique(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		SessionID string `json:"session_id"`
		Persona   string `json:"persona"`
		Critique  string `json:"critique"`
	}
	if err := req.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := t.svc.SubmitCritique(ctx, args.SessionID, args.Persona, args.Critique)
	if err != nil {
		return workflowError(err)
	}
	return result(res)
}

func (t *tools) submitSynthesis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		SessionID string `json:"session_id"`
		Synthesis string `json:"synthesis"`
	}
	if err := req.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := t.svc.SubmitSynthesis(ctx, args.SessionID, args.Synthesis)
	if err != nil {
		return workflowError(err)
	}
	return result(res)
}

func (t *tools) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		SessionID string `json:"session_id"`
	}
	if err := req.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	session, err := t.svc.GetSession(ctx, args.SessionID)
	if err != nil {
		return workflowError(err)
	}
	return result(session)
}

func (t *tools) getDomains(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(catalog.DomainKeywords)
}

func (t *tools) getPersonas(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := make(map[string][][]string, len(catalog.PersonaPairs))
	for d, entries := range catalog.PersonaPairs {
		pairs := make([][]string, 0, len(entries))
		for _, entry := range entries {
			pairs = append(pairs, entry.Pair.Slice())
		}
		out[string(d)] = pairs
	}
	return result(out)
}

func (t *tools) getTemplates(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(catalog.Templates)
}
