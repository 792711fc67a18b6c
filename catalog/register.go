package catalog

import (
	"fmt"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"

	"github.com/jonwraymond/toolcompute/compute"
)

// DocRegistrar stores documentation entries by tool ID.
// *tooldoc.InMemoryStore satisfies it.
type DocRegistrar interface {
	RegisterDoc(toolID string, entry tooldoc.DocEntry) error
}

// Register adds every catalogue tool to idx, bound to a local backend named
// by HandlerName, and records its documentation in docs when docs is non-nil.
// It stops at the first failure.
func Register(idx index.Index, docs DocRegistrar) error {
	if idx == nil {
		return fmt.Errorf("catalog: index is required")
	}
	for _, tool := range Tools() {
		if err := idx.RegisterTool(tool, model.NewLocalBackend(HandlerName(tool.Name))); err != nil {
			return fmt.Errorf("catalog: register %s: %w", tool.Name, err)
		}
		if docs == nil {
			continue
		}
		if err := docs.RegisterDoc(ToolID(tool.Name), docEntry(tool.Name)); err != nil {
			return fmt.Errorf("catalog: register doc %s: %w", tool.Name, err)
		}
	}
	return nil
}

func docEntry(name string) tooldoc.DocEntry {
	doc, _ := compute.LookupFunction(name)

	notes := fmt.Sprintf("Family: %s. Arguments: %s.", doc.Family, doc.Arity)
	switch {
	case doc.CheckedName == name:
		notes += " Overflow is reported as an error."
	case doc.CheckedName != "":
		notes += fmt.Sprintf(" Overflow behavior is kernel-defined; see %s.", doc.CheckedName)
	}
	if opts := optionsType(doc); opts != "" {
		notes += fmt.Sprintf(" Options: %s.", opts)
	}

	return tooldoc.DocEntry{
		Summary: doc.Summary,
		Notes:   notes,
	}
}
