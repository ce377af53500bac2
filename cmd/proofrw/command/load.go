package command

import (
	"github.com/hashicorp/go-multierror"

	"github.com/proofrw/proofrw/pkg/rewrite"
	"github.com/proofrw/proofrw/pkg/sexpr"
)

// loadKB reads kbPath and converts its forms into rules with codec,
// returning them for the caller to install. Every diagnostic it hits
// is printed through the command's UI and returned; conversion does
// not stop at the first malformed form (a lex or parse error does).
func (m *Meta) loadKB(codec *sexpr.Codec, kbPath string) ([]rewrite.Rule, error) {
	src, forms, err := sexpr.ParseFile(kbPath)
	if err != nil {
		m.reportLoadErrors(kbPath, err)
		return nil, err
	}
	rules, err := codec.LoadRules(src, forms)
	if err != nil {
		m.reportLoadErrors(kbPath, err)
		return rules, err
	}
	return rules, nil
}

// loadTheorems reads every `(defthm ...)` form from thmPath.
func (m *Meta) loadTheorems(codec *sexpr.Codec, thmPath string) ([]rewrite.Theorem, error) {
	src, forms, err := sexpr.ParseFile(thmPath)
	if err != nil {
		m.reportLoadErrors(thmPath, err)
		return nil, err
	}
	theorems, err := codec.LoadTheorems(src, forms)
	if err != nil {
		m.reportLoadErrors(thmPath, err)
		return theorems, err
	}
	return theorems, nil
}

// reportLoadErrors prints every diagnostic collected while loading a
// file through the command's UI, one UI.Error call per diagnostic.
func (m *Meta) reportLoadErrors(path string, err error) {
	merr, ok := err.(*multierror.Error)
	if !ok {
		m.UI.Error(err.Error())
		return
	}
	for _, e := range merr.Errors {
		m.UI.Error(e.Error())
	}
}
