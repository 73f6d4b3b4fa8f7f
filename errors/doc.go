/*
Package errors defines the semantic error types surfaced by the table store.

Two kinds of failure carry meaning for callers and get dedicated types:

  - KeyNotFoundError: a delete addressed keys with no entity behind them.
    Both keys are embedded in the message.
  - MissingArgumentError: a required constructor argument was nil or blank.

Both support errors.Is against the package sentinels, so callers can branch
without depending on the concrete types:

	if errors.IsNotFound(err) {
	    // entity was already gone
	}

Store-level failures are not wrapped in a dedicated type; the accessor logs
them once and returns them wrapped with %w so the original error identity is
preserved.
*/
package errors
