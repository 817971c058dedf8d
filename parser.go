package smtpcmd

// Parser decodes a single command line into a Request. Errors are
// reported as *ParseError.
//
// No implementation is provided by this package.
type Parser interface {
	ParseRequest(line []byte) (Request, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(line []byte) (Request, error)

func (f ParserFunc) ParseRequest(line []byte) (Request, error) {
	return f(line)
}

// UnimplementedParser rejects every line with ErrNotImplemented.
var UnimplementedParser Parser = ParserFunc(func(line []byte) (Request, error) {
	return nil, &ParseError{Input: line, Err: ErrNotImplemented}
})
