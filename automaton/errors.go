package automaton

import "errors"

// ErrUnknownSymbol is the InvalidAlphabet error returned when a
// trace passed to Accepts mentions a symbol outside the automaton's
// declared alphabet.
var ErrUnknownSymbol = errors.New("automaton: symbol not in declared alphabet")
