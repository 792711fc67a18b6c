// Package catalog publishes the compute function table as discoverable tools.
//
// Every canonical function name (checked arithmetic variants included) becomes
// a [model.Tool] in the "compute" namespace. [Register] adds them to a
// tooldiscovery index with documentation, and [Backend] executes them through
// the compute facade:
//
//	idx := index.NewInMemoryIndex()
//	docs := tooldoc.NewInMemoryStore(tooldoc.StoreOptions{Index: idx})
//	if err := catalog.Register(idx, docs); err != nil {
//	    return err
//	}
//
//	b := catalog.NewBackend(ectx)
//	out, err := b.Execute(ctx, "greater", map[string]any{
//	    "args": []datum.Datum{left, right},
//	})
//
// [Backend.Handlers] exposes the same functions as a handler map keyed by the
// local backend names used in [Register].
package catalog
