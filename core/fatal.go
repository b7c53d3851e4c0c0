package core

// FatalHandler reports an unrecoverable configuration failure. It should
// not return; if it does, Fail panics.
type FatalHandler func(msg string)

var fatalHandler FatalHandler = func(msg string) {
	DebugPrintln("FATAL: " + msg)
}

// SetFatalHandler installs the platform-specific fatal error sink.
func SetFatalHandler(h FatalHandler) {
	if h == nil {
		h = func(string) {}
	}
	fatalHandler = h
}

// Fail reports msg through the fatal handler and halts. It never returns.
func Fail(msg string) {
	fatalHandler(msg)
	panic(msg)
}
