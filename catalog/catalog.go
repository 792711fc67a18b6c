package catalog

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonwraymond/toolcompute/compute"
)

// Namespace is the tool namespace of every catalogue entry.
const Namespace = "compute"

// ToolID returns the namespaced tool ID of a canonical function name.
func ToolID(name string) string {
	return fmt.Sprintf("%s:%s", Namespace, name)
}

// HandlerName returns the local handler name bound to a function.
func HandlerName(name string) string {
	return Namespace + "-" + name
}

// Title returns a display title for a canonical function name,
// e.g. "Day Of Week" for "day_of_week".
func Title(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// Tools returns one tool per canonical function name, checked arithmetic
// variants included, in catalogue order.
func Tools() []model.Tool {
	docs := compute.Functions()
	out := make([]model.Tool, 0, len(docs)*2)
	for _, doc := range docs {
		out = append(out, toolFor(doc, doc.Name, false))
		if doc.CheckedName != "" {
			out = append(out, toolFor(doc, doc.CheckedName, true))
		}
	}
	return out
}

func toolFor(doc compute.FunctionDoc, name string, checked bool) model.Tool {
	description := doc.Summary
	if checked {
		description += "; overflow is reported as an error"
	}

	tags := []string{string(doc.Family), "compute"}
	if checked {
		tags = append(tags, "checked")
	}

	return model.Tool{
		Tool: mcp.Tool{
			Name:        name,
			Title:       Title(name),
			Description: description,
			InputSchema: inputSchema(doc),
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
			},
		},
		Namespace: Namespace,
		Tags:      model.NormalizeTags(tags),
	}
}

// optionsType returns the TypeName of the options a catalogue tool accepts,
// or empty if it takes none. Arithmetic tools accept ArithmeticOptions to
// request the checked variant.
func optionsType(doc compute.FunctionDoc) string {
	if doc.Family == compute.FamilyArithmetic {
		return compute.ArithmeticOptions{}.TypeName()
	}
	return doc.OptionsType
}

// inputSchema describes the argument map accepted by Backend.Execute.
func inputSchema(doc compute.FunctionDoc) map[string]any {
	args := map[string]any{
		"type":        "array",
		"description": "Argument values",
		"minItems":    doc.Arity.NumArgs,
	}
	if !doc.Arity.VarArgs {
		args["maxItems"] = doc.Arity.NumArgs
	}

	properties := map[string]any{"args": args}
	required := []any{"args"}
	if opts := optionsType(doc); opts != "" {
		properties["options"] = map[string]any{
			"type":        "object",
			"description": opts,
		}
		if doc.Family == compute.FamilySetLookup {
			required = append(required, "options")
		}
	}

	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
