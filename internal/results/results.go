// Package results defines the success/failure envelope returned by service
// operations. Business failures travel as payloads, not Go errors, so
// handlers can map them onto failure topics; Err is reserved for
// infrastructure problems that should nack the message.
package results

// OperationResult holds at most one of Success or Failure. Err signals an
// infrastructure error independent of both.
type OperationResult struct {
	Success any
	Failure any
	Err     error
}

// Success wraps a success payload.
func Success(payload any) OperationResult {
	return OperationResult{Success: payload}
}

// Failure wraps a business failure payload.
func Failure(payload any) OperationResult {
	return OperationResult{Failure: payload}
}

// Error wraps an infrastructure error.
func Error(err error) OperationResult {
	return OperationResult{Err: err}
}

// HandlerResult is one outbound message produced by a handler.
type HandlerResult struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// MapToHandlerResults converts the envelope into handler results: the
// success payload onto successTopic, the failure payload onto
// failureTopic. An empty envelope maps to no results (a normal no-event
// outcome, e.g. the detector found nothing).
func (r OperationResult) MapToHandlerResults(successTopic, failureTopic string) []HandlerResult {
	switch {
	case r.Success != nil:
		return []HandlerResult{{Topic: successTopic, Payload: r.Success}}
	case r.Failure != nil:
		return []HandlerResult{{Topic: failureTopic, Payload: r.Failure}}
	default:
		return nil
	}
}
