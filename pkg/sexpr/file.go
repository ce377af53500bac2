package sexpr

import "os"

// ParseFile reads filename and parses every top-level s-expression in
// it. A failure to read the file is reported as a KindIO Error; a
// failure to lex or parse its contents carries the position of the
// offending token and the file's source text for Error.Report to
// render a caret against. The source text is also returned so a
// caller that does further processing of forms (e.g. LoadRules,
// LoadTheorems) can attach it to any later diagnostic the same way.
func ParseFile(filename string) (string, []Sexp, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", nil, &Error{
			Kind:    KindIO,
			Pos:     Position{Filename: filename, Line: 1, Column: 1},
			Message: err.Error(),
		}
	}

	src := string(data)
	lexer := NewLexer(filename, src)
	parser := NewParser(lexer)
	forms, err := parser.ParseAll()
	if err != nil {
		if se, ok := err.(*Error); ok {
			se.Source = src
		}
		return src, nil, err
	}
	return src, forms, nil
}
