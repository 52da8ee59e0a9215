package parser

import (
	"slices"

	"github.com/erraggy/oasdecode/internal/maputil"
	"github.com/erraggy/oasdecode/internal/pathutil"
)

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount           int // Number of paths defined
	OperationCount      int // Number of operations across all paths
	SchemaCount         int // Number of component schemas
	ParameterCount      int // Number of component parameters
	ResponseCount       int // Number of component responses
	SecuritySchemeCount int // Number of component security schemes
	RefCount            int // Number of "$ref" references anywhere in the document
}

// GetDocumentStats returns statistics for a decoded document
func GetDocumentStats(doc *Document) DocumentStats {
	if doc == nil {
		return DocumentStats{}
	}
	stats := DocumentStats{PathCount: len(doc.Paths)}
	for _, item := range doc.Paths {
		if item != nil && item.Get != nil {
			stats.OperationCount++
		}
	}
	if c := doc.Components; c != nil {
		stats.SchemaCount = len(c.Schemas)
		stats.ParameterCount = len(c.Parameters)
		stats.ResponseCount = len(c.Responses)
		stats.SecuritySchemeCount = len(c.SecuritySchemes)
	}
	stats.RefCount = len(CollectRefs(doc))
	return stats
}

// RefLocation is a "$ref" string and the JSON path of the reference object
// that holds it.
type RefLocation struct {
	Path string `json:"path"`
	Ref  string `json:"ref"`
}

// CollectRefs returns every reference in doc, in document order with map
// members visited in sorted key order. References are not resolved.
func CollectRefs(doc *Document) []RefLocation {
	if doc == nil {
		return nil
	}
	w := &refWalker{}
	for _, name := range maputil.SortedKeys(doc.Paths) {
		if item := doc.Paths[name]; item != nil && item.Get != nil {
			path := pathutil.Key(pathutil.Key(pathutil.Key(pathutil.Root, "paths"), name), "get")
			w.operation(path, item.Get)
		}
	}
	if c := doc.Components; c != nil {
		base := pathutil.Key(pathutil.Root, "components")
		walkRefMap(w, pathutil.Key(base, "schemas"), c.Schemas, w.schema)
		walkRefMap(w, pathutil.Key(base, "parameters"), c.Parameters, w.parameter)
		walkRefMap(w, pathutil.Key(base, "responses"), c.Responses, w.response)
	}
	return w.refs
}

// UnreferencedComponents returns, in sorted order, the reference of every
// component in doc that no "$ref" points at. A security scheme counts as used
// when an operation's security requirement names it. Self references count.
func UnreferencedComponents(doc *Document) []string {
	unused := []string{}
	if doc == nil || doc.Components == nil {
		return unused
	}
	used := make(map[string]bool)
	for _, loc := range CollectRefs(doc) {
		used[loc.Ref] = true
	}
	for _, item := range doc.Paths {
		if item == nil || item.Get == nil {
			continue
		}
		for _, req := range item.Get.Security {
			for name := range req {
				used[pathutil.SecuritySchemeRef(name)] = true
			}
		}
	}

	c := doc.Components
	check := func(ref func(string) string, names []string) {
		for _, name := range names {
			if r := ref(name); !used[r] {
				unused = append(unused, r)
			}
		}
	}
	check(pathutil.SchemaRef, maputil.SortedKeys(c.Schemas))
	check(pathutil.ParameterRef, maputil.SortedKeys(c.Parameters))
	check(pathutil.ResponseRef, maputil.SortedKeys(c.Responses))
	check(pathutil.SecuritySchemeRef, maputil.SortedKeys(c.SecuritySchemes))
	slices.Sort(unused)
	return unused
}

type refWalker struct {
	refs []RefLocation
}

func walkRef[T any](w *refWalker, path string, r Reference[T], visit func(string, *T)) {
	if r.IsRef() {
		w.refs = append(w.refs, RefLocation{Path: path, Ref: r.Ref})
		return
	}
	visit(path, r.Value)
}

func walkRefMap[T any](w *refWalker, path string, m map[string]Reference[T], visit func(string, *T)) {
	for _, name := range maputil.SortedKeys(m) {
		walkRef(w, pathutil.Key(path, name), m[name], visit)
	}
}

func walkRefList[T any](w *refWalker, path string, list []Reference[T], visit func(string, *T)) {
	for i, r := range list {
		walkRef(w, pathutil.Index(path, i), r, visit)
	}
}

func (w *refWalker) operation(path string, op *Operation) {
	walkRefList(w, pathutil.Key(path, "parameters"), op.Parameters, w.parameter)
	if op.Responses != nil {
		responses := pathutil.Key(path, "responses")
		if op.Responses.Default != nil {
			w.response(pathutil.Key(responses, ResponseDefault), op.Responses.Default)
		}
		walkRefMap(w, responses, op.Responses.Codes, w.response)
	}
}

func (w *refWalker) parameter(path string, p *Parameter) {
	if p.Schema != nil {
		walkRef(w, pathutil.Key(path, "schema"), *p.Schema, w.schema)
	}
}

func (w *refWalker) response(path string, r *Response) {
	for _, mediaType := range maputil.SortedKeys(r.Content) {
		if mt := r.Content[mediaType]; mt != nil && mt.Schema != nil {
			at := pathutil.Key(pathutil.Key(pathutil.Key(path, "content"), mediaType), "schema")
			walkRef(w, at, *mt.Schema, w.schema)
		}
	}
}

func (w *refWalker) schema(path string, s *Schema) {
	walkRefMap(w, pathutil.Key(path, "properties"), s.Properties, w.schema)
	if s.Items != nil {
		walkRef(w, pathutil.Key(path, "items"), *s.Items, w.schema)
	}
	walkRefList(w, pathutil.Key(path, "allOf"), s.AllOf, w.schema)
	walkRefList(w, pathutil.Key(path, "anyOf"), s.AnyOf, w.schema)
	walkRefList(w, pathutil.Key(path, "oneOf"), s.OneOf, w.schema)
	if s.Not != nil {
		walkRef(w, pathutil.Key(path, "not"), *s.Not, w.schema)
	}
}
