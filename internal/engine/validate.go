package engine

import "github.com/rcsview/rcsview/internal/logging"

// Result is the outcome of a setter. Setters fail soft: an invalid write
// logs its diagnostic at error severity, reports it here, and leaves the
// prior value in place. Callers re-read the property to discover whether a
// write took; no partial mutation ever occurs.
type Result struct {
	OK         bool
	Diagnostic string
}

func ok() Result {
	return Result{OK: true}
}

func (e *Engine) reject(diagnostic string) Result {
	e.logger.Errorf("%s", diagnostic)
	return Result{Diagnostic: diagnostic}
}

func (e *Engine) validate(candidate string, available []string, diagnostic string) Result {
	if Validate(e.logger, candidate, available, diagnostic) {
		return ok()
	}
	return Result{Diagnostic: diagnostic}
}

// Validate checks membership of candidate in the available set, logging the
// diagnostic at error severity on failure. An absent available set (nil)
// rejects every candidate: there is nothing to select from. The fail-soft
// policy is deliberate: the engine is driven interactively during
// exploratory analysis, and an invalid selection must not abort a session.
func Validate(logger logging.Logger, candidate string, available []string, diagnostic string) bool {
	for _, v := range available {
		if v == candidate {
			return true
		}
	}
	logger.Errorf("%s", diagnostic)
	return false
}
