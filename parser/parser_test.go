package parser

import (
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// expectElem builds an expected element; PathWithoutLast and PathLast are
// derived from fullPath the same way the contract defines them.
func expectElem(name string, fullPath []string, typeFilter int, generics ...*QueryElement) *QueryElement {
	if generics == nil {
		generics = []*QueryElement{}
	}

	return &QueryElement{
		Name:            name,
		FullPath:        fullPath,
		PathWithoutLast: fullPath[:len(fullPath)-1],
		PathLast:        fullPath[len(fullPath)-1],
		Generics:        generics,
		TypeFilter:      typeFilter,
	}
}

func TestParseNeverType(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []*QueryElement
		wantErr  string
	}{
		{
			name:  "bare never type",
			query: "!",
			expected: []*QueryElement{
				expectElem("never", []string{"never"}, FilterNever),
			},
		},
		{
			name:    "never type rejects generics",
			query:   "!<T>",
			wantErr: "Never type `!` does not accept generic parameters",
		},
		{
			name:    "never type rejects generics after whitespace",
			query:   "! <T>",
			wantErr: "Never type `!` does not accept generic parameters",
		},
		{
			name:  "never type as path root",
			query: "!::b",
			expected: []*QueryElement{
				expectElem("!::b", []string{"never", "b"}, FilterUnspecified),
			},
		},
		{
			name:  "never root with multiple trailing segments",
			query: "!::b::c",
			expected: []*QueryElement{
				expectElem("!::b::c", []string{"never", "b", "c"}, FilterUnspecified),
			},
		},
		{
			name:  "never root path with generics",
			query: "!::b<T>",
			expected: []*QueryElement{
				expectElem("!::b", []string{"never", "b"}, FilterUnspecified,
					expectElem("T", []string{"t"}, FilterUnspecified)),
			},
		},
		{
			name:    "never type as path leaf",
			query:   "b::!",
			wantErr: "Never type `!` is not associated item",
		},
		{
			name:    "never type after never root",
			query:   "!::!",
			wantErr: "Never type `!` is not associated item",
		},
		{
			name:    "never type as interior segment",
			query:   "b::!::c",
			wantErr: "Never type `!` is not associated item",
		},
		{
			name:  "never type inside generics",
			query: "R<!>",
			expected: []*QueryElement{
				expectElem("R", []string{"r"}, FilterUnspecified,
					expectElem("never", []string{"never"}, FilterNever)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.query)

			assert.Equal(t, tt.query, result.UserQuery)
			assert.Equal(t, 0, len(result.Returned))

			if tt.wantErr != "" {
				assert.NotZero(t, result.Error)
				assert.Equal(t, tt.wantErr, *result.Error)
				assert.Equal(t, 0, len(result.Elems))
				assert.Equal(t, 0, result.FoundElems)

				return
			}

			assert.Zero(t, result.Error)
			assert.Equal(t, tt.expected, result.Elems)
			assert.Equal(t, len(tt.expected), result.FoundElems)
		})
	}
}

func TestParseMacroSuffix(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []*QueryElement
		wantErr  string
	}{
		{
			name:  "simple macro",
			query: "a!",
			expected: []*QueryElement{
				expectElem("a", []string{"a"}, FilterMacro),
			},
		},
		{
			name:  "macro at path leaf",
			query: "vec::vec!",
			expected: []*QueryElement{
				expectElem("vec::vec", []string{"vec", "vec"}, FilterMacro),
			},
		},
		{
			name:    "macro rejects associated items",
			query:   "a!::b",
			wantErr: "Cannot have associated items in macros",
		},
		{
			name:    "first violation wins over trailing malformed content",
			query:   "a!::b!",
			wantErr: "Cannot have associated items in macros",
		},
		{
			name:    "macro at path leaf rejects continuation",
			query:   "a::b!::c",
			wantErr: "Cannot have associated items in macros",
		},
		{
			name:  "macro with generics",
			query: "write!<T>",
			expected: []*QueryElement{
				expectElem("write", []string{"write"}, FilterMacro,
					expectElem("T", []string{"t"}, FilterUnspecified)),
			},
		},
		{
			name:  "detached bang is a new never element",
			query: "a !",
			expected: []*QueryElement{
				expectElem("a", []string{"a"}, FilterUnspecified),
				expectElem("never", []string{"never"}, FilterNever),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.query)

			assert.Equal(t, tt.query, result.UserQuery)

			if tt.wantErr != "" {
				assert.NotZero(t, result.Error)
				assert.Equal(t, tt.wantErr, *result.Error)
				assert.Equal(t, 0, result.FoundElems)

				return
			}

			assert.Zero(t, result.Error)
			assert.Equal(t, tt.expected, result.Elems)
		})
	}
}

func TestParsePathsAndGenerics(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []*QueryElement
	}{
		{
			name:  "plain identifier keeps written case in name",
			query: "Option",
			expected: []*QueryElement{
				expectElem("Option", []string{"option"}, FilterUnspecified),
			},
		},
		{
			name:  "multi segment path is lower-cased",
			query: "std::Vec",
			expected: []*QueryElement{
				expectElem("std::Vec", []string{"std", "vec"}, FilterUnspecified),
			},
		},
		{
			name:  "generics attach to the just-completed element",
			query: "Result<T, E>",
			expected: []*QueryElement{
				expectElem("Result", []string{"result"}, FilterUnspecified,
					expectElem("T", []string{"t"}, FilterUnspecified),
					expectElem("E", []string{"e"}, FilterUnspecified)),
			},
		},
		{
			name:  "nested generics",
			query: "Result<Option<T>, E>",
			expected: []*QueryElement{
				expectElem("Result", []string{"result"}, FilterUnspecified,
					expectElem("Option", []string{"option"}, FilterUnspecified,
						expectElem("T", []string{"t"}, FilterUnspecified)),
					expectElem("E", []string{"e"}, FilterUnspecified)),
			},
		},
		{
			name:  "generics on a path element",
			query: "option::Option<u8>",
			expected: []*QueryElement{
				expectElem("option::Option", []string{"option", "option"}, FilterUnspecified,
					expectElem("u8", []string{"u8"}, FilterUnspecified)),
			},
		},
		{
			name:  "empty generic list",
			query: "a<>",
			expected: []*QueryElement{
				expectElem("a", []string{"a"}, FilterUnspecified),
			},
		},
		{
			name:  "comma separated top-level elements",
			query: "a, b",
			expected: []*QueryElement{
				expectElem("a", []string{"a"}, FilterUnspecified),
				expectElem("b", []string{"b"}, FilterUnspecified),
			},
		},
		{
			name:  "whitespace separated top-level elements",
			query: "a b",
			expected: []*QueryElement{
				expectElem("a", []string{"a"}, FilterUnspecified),
				expectElem("b", []string{"b"}, FilterUnspecified),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.query)

			assert.Zero(t, result.Error)
			assert.Equal(t, tt.expected, result.Elems)
			assert.Equal(t, len(tt.expected), result.FoundElems)
			assert.Equal(t, tt.query, result.UserQuery)
		})
	}
}

func TestParseEmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		result := Parse(query)

		assert.Zero(t, result.Error)
		assert.Equal(t, 0, len(result.Elems))
		assert.Equal(t, 0, result.FoundElems)
		assert.Equal(t, query, result.UserQuery)
	}
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{
			name:    "unclosed generics",
			query:   "R<T",
			wantErr: "unclosed generic-parameter list",
		},
		{
			name:    "stray closing bracket",
			query:   ">",
			wantErr: `unexpected token in query: ">"`,
		},
		{
			name:    "adjacent elements without separator",
			query:   "a!b",
			wantErr: `unexpected token in query: "b"`,
		},
		{
			name:    "single colon",
			query:   "a:b",
			wantErr: "invalid single colon",
		},
		{
			name:    "path separator without segment",
			query:   "a::",
			wantErr: "expected identifier after `::`, got \"\"",
		},
		{
			name:    "leading path separator",
			query:   "::a",
			wantErr: `unexpected token in query: "::"`,
		},
		{
			name:    "unknown rune",
			query:   "a#",
			wantErr: `unexpected token in query: "#"`,
		},
		{
			name:    "second generic list",
			query:   "R<T><U>",
			wantErr: `unexpected token in query: "<"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.query)

			assert.NotZero(t, result.Error)
			assert.Equal(t, tt.wantErr, *result.Error)
			assert.Equal(t, 0, result.FoundElems)
			assert.Equal(t, tt.query, result.UserQuery)
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	result := ParseWithOptions("a<b<c<d>>>", Options{MaxDepth: 2})

	assert.NotZero(t, result.Error)
	assert.Equal(t, "generic parameters nested too deeply", *result.Error)

	// The same query is fine within the default limit.
	result = Parse("a<b<c<d>>>")
	assert.Zero(t, result.Error)
	assert.Equal(t, 1, result.FoundElems)
}

func TestParseDeepNestingRejectsDeterministically(t *testing.T) {
	var query string
	for range 500 {
		query += "a<"
	}

	result := Parse(query)

	assert.NotZero(t, result.Error)
	assert.Equal(t, "generic parameters nested too deeply", *result.Error)
}

func TestParseCustomFilterTable(t *testing.T) {
	filters := NewFilterTable(map[string]int{"macro": 99})
	result := ParseWithOptions("a!", Options{Filters: filters})

	assert.Zero(t, result.Error)
	assert.Equal(t, 99, result.Elems[0].TypeFilter)
}

func TestFilterTableResolve(t *testing.T) {
	filters := DefaultFilterTable()

	assert.Equal(t, FilterNever, filters.Resolve("never"))
	assert.Equal(t, FilterMacro, filters.Resolve("macro"))
	assert.Equal(t, FilterUnspecified, filters.Resolve("struct"))
}

func TestParseDeterminism(t *testing.T) {
	queries := []string{"!", "a!", "!::b<T>", "b::!", "Result<Option<T>, E>", "a!::b!"}

	for _, query := range queries {
		first := Parse(query)
		second := Parse(query)

		assert.Equal(t, first, second)
	}
}

func TestParseConcurrent(t *testing.T) {
	expected := Parse("!::b<T>")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				result := Parse("!::b<T>")
				if result.FoundElems != expected.FoundElems {
					t.Error("concurrent parse diverged")
					return
				}
			}
		}()
	}

	wg.Wait()
}
