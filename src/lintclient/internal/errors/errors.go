package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ErrSessionAlreadyStarted reports a Start call on a session that has already left the not-started state.
	ErrSessionAlreadyStarted = New("session already started")
	// ErrSessionNotReady reports traffic sent on a session that is not ready.
	ErrSessionNotReady = New("session is not ready")
	// ErrDuplicateHandler reports a second registration for the same method.
	ErrDuplicateHandler = New("handler already registered for method")
	// ErrMalformedCompilationDatabase reports a compilation database that could not be parsed.
	ErrMalformedCompilationDatabase = New("malformed compilation database")
	// ErrScmUnavailable reports that no source-control collaborator could be obtained.
	ErrScmUnavailable = New("source control is unavailable")
)

// IsProgrammerError reports whether the error reflects a misuse of the client API rather than a runtime condition.
func IsProgrammerError(e error) bool {
	return stderr.Is(e, ErrSessionAlreadyStarted) || stderr.Is(e, ErrDuplicateHandler)
}
