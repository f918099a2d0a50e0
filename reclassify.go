package unchecked

import "context"

// reclassify converts a non-nil error returned by a wrapped function into the
// value the adapted function panics with.
func (c *config) reclassify(err error) error {
	category := Classify(err)
	if category == CategoryRuntime {
		return err
	}

	if category == CategoryInterrupt {
		c.interrupter.MarkInterrupted()
	}

	var raised error
	kind := "-"
	if !c.classified() {
		raised = &UncheckedError{cause: err}
	} else if k, ok := firstMatch(c.kinds, err); ok {
		kind = k.String()
		raised = &UncheckedError{cause: err}
	} else {
		raised = &UnexpectedError{cause: err}
	}

	code, _ := GetCode(raised)
	c.logger.DebugContext(context.Background(), "reclassified error",
		"category", string(category),
		"code", string(code),
		"kind", kind,
		"error", err,
	)

	return raised
}

// raise panics with the reclassified form of err.
func (c *config) raise(err error) {
	panic(c.reclassify(err))
}
