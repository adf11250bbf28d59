package parser

// assemble packages a parse outcome into the final ParseResult. UserQuery is
// carried byte for byte; slices are always non-nil so the serialized form
// shows [] rather than null.
func assemble(userQuery string, elems []*QueryElement, err error) ParseResult {
	result := ParseResult{
		Elems:     make([]*QueryElement, 0),
		UserQuery: userQuery,
		Returned:  make([]*QueryElement, 0),
	}

	if err != nil {
		message := err.Error()
		result.Error = &message

		return result
	}

	if elems != nil {
		result.Elems = elems
	}

	result.FoundElems = len(result.Elems)

	return result
}
