// Package agent wires the Photoshop tool surface into an LLM conversation
// loop. There is no state machine here: the model drives, tools execute,
// and the loop ends when the model stops asking for tools.
package agent

import (
	"context"
	"fmt"

	"github.com/Vrun1506/foto-AI/internal/agent/llm"
	"github.com/Vrun1506/foto-AI/internal/photoshop/tools"
)

// Registry resolves tool names for the model and declares their schemas.
type Registry struct {
	toolbox *tools.Toolbox
	defs    []llm.ToolDef
	byName  map[string]tools.Tool
}

// NewRegistry builds a registry over the full toolbox.
func NewRegistry(toolbox *tools.Toolbox) *Registry {
	all := toolbox.All()
	r := &Registry{
		toolbox: toolbox,
		defs:    make([]llm.ToolDef, 0, len(all)),
		byName:  make(map[string]tools.Tool, len(all)),
	}
	for _, tool := range all {
		r.byName[tool.Name] = tool
		r.defs = append(r.defs, toolDef(tool))
	}
	return r
}

// Defs returns the tool declarations sent with every model request.
func (r *Registry) Defs() []llm.ToolDef {
	return r.defs
}

// Call executes the named tool. Failures come back as a result string with
// the error flag set, never as a loop-terminating error: each tool call
// reports its own failure and the conversation continues.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, bool) {
	tool, ok := r.byName[name]
	if !ok {
		return fmt.Sprintf("unknown tool: %s", name), true
	}
	result, err := tool.Run(ctx, tools.Args(args))
	if err != nil {
		return err.Error(), true
	}
	return result.Text, false
}

func toolDef(tool tools.Tool) llm.ToolDef {
	schema := llm.InputSchema{
		Type:       "object",
		Properties: map[string]llm.Property{},
	}
	for _, arg := range tool.Args {
		schema.Properties[arg.Name] = llm.Property{
			Type:        string(arg.Type),
			Description: arg.Description,
		}
		if arg.Required {
			schema.Required = append(schema.Required, arg.Name)
		}
	}
	return llm.ToolDef{
		Name:        tool.Name,
		Description: tool.Description,
		InputSchema: schema,
	}
}
