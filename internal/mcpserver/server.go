// Package mcpserver exposes the Counter-Pose workflow over the Model
// Context Protocol. This is wiring only: every tool handler delegates to
// the workflow service and serializes its result.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rptlabs/counterpose/internal/workflow"
)

// Version is set at build time via ldflags.
var Version = "dev"

const instructions = `Counter-Pose implements the RPT (Reasoning-through-Perspective-Transition)
technique: submit reasoning, pick a persona pair, produce one critique per
persona, then synthesize. Start with counterpose_start; each response names
the next required tool.`

// New creates the MCP server with all workflow and catalog tools registered.
func New(svc *workflow.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"counterpose",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	t := &tools{svc: svc}

	s.AddTool(mcp.NewTool("counterpose_start",
		mcp.WithDescription("Start a critique session: classify the reasoning into a domain and rank persona pair options."),
		mcp.WithString("reasoning", mcp.Required(), mcp.Description("The reasoning to validate")),
		mcp.WithString("session_id", mcp.Description("Session identifier; generated when omitted")),
	), t.start)

	s.AddTool(mcp.NewTool("select_personas",
		mcp.WithDescription("Select the two critique personas for a session. Custom persona names are accepted."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithArray("personas", mcp.Required(), mcp.Description("Exactly two persona names"),
			mcp.Items(map[string]any{"type": "string"})),
	), t.selectPersonas)

	s.AddTool(mcp.NewTool("submit_critique",
		mcp.WithDescription("Submit one persona's critique; the response names the next persona or the synthesis step."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithString("persona", mcp.Required(), mcp.Description("One of the session's selected personas")),
		mcp.WithString("critique", mcp.Required(), mcp.Description("The critique text")),
	), t.submitCritique)

	s.AddTool(mcp.NewTool("submit_synthesis",
		mcp.WithDescription("Submit the final synthesis and complete the session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithString("synthesis", mcp.Required(), mcp.Description("The synthesis text")),
	), t.submitSynthesis)

	s.AddTool(mcp.NewTool("get_session",
		mcp.WithDescription("Read a session's full state."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
	), t.getSession)

	s.AddTool(mcp.NewTool("get_domains",
		mcp.WithDescription("List the available domains and their detection keywords."),
	), t.getDomains)

	s.AddTool(mcp.NewTool("get_personas",
		mcp.WithDescription("List the predefined persona pairs for each domain."),
	), t.getPersonas)

	s.AddTool(mcp.NewTool("get_templates",
		mcp.WithDescription("List example reasoning scenarios with suitable persona pairs."),
	), t.getTemplates)

	return s
}
