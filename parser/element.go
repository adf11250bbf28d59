package parser

// QueryElement is one parsed identifier-or-special-token occurrence in a
// search query. Field names and shapes are a compatibility contract with the
// ranking engine and the UI; renaming any of them is a breaking change.
type QueryElement struct {
	// Name is the display text exactly as written for plain identifiers and
	// generic parameters. A macro element drops the trailing `!`, and a bare
	// never-type element uses the canonical label "never".
	Name string `json:"name" yaml:"name"`

	// FullPath is the lower-cased path from root to leaf. When the never
	// type occupies the path root it contributes a synthetic "never"
	// segment.
	FullPath []string `json:"fullPath" yaml:"fullPath"`

	// PathWithoutLast is FullPath minus its final segment.
	PathWithoutLast []string `json:"pathWithoutLast" yaml:"pathWithoutLast"`

	// PathLast is the final segment of FullPath.
	PathLast string `json:"pathLast" yaml:"pathLast"`

	// Generics holds the nested elements of the `<...>` list attached to
	// this element, in written order.
	Generics []*QueryElement `json:"generics" yaml:"generics"`

	// TypeFilter narrows what kind of item this element may match. See the
	// Filter* constants.
	TypeFilter int `json:"typeFilter" yaml:"typeFilter"`
}

// ParseResult is the outcome of parsing one query string. Rejections are
// data, not panics: Error is non-nil if and only if the query was rejected,
// in which case Elems is empty. An empty-but-valid query yields empty Elems
// with a nil Error.
type ParseResult struct {
	Elems      []*QueryElement `json:"elems" yaml:"elems"`
	FoundElems int             `json:"foundElems" yaml:"foundElems"`
	UserQuery  string          `json:"userQuery" yaml:"userQuery"`

	// Returned is reserved for the return-type constraint syntax handled by
	// the surrounding query language; this grammar slice never fills it.
	Returned []*QueryElement `json:"returned" yaml:"returned"`

	Error *string `json:"error" yaml:"error"`
}
