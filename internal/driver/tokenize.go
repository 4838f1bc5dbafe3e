package driver

import (
	"io"

	"jsfmt/internal/lexer"
	"jsfmt/internal/source"
	"jsfmt/internal/token"
)

// TokenizeResult holds the token stream of one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize loads path ("-" reads r) and runs the lexer to completion.
func Tokenize(path string, r io.Reader, opts lexer.Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	var (
		fileID source.FileID
		err    error
	)
	if path == "-" {
		fileID, err = fs.LoadReader("<stdin>", r)
	} else {
		fileID, err = fs.Load(path)
	}
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Tokenize(file, opts),
	}, nil
}
