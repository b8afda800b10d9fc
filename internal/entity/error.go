package entity

// PipelineError is the single error shape returned by an upload. Kind is one
// of the errs.Err* sentinels; Err is the underlying cause.
type PipelineError struct {
	Kind error
	Err  error
}

func (e *PipelineError) Error() string {
	return e.Err.Error()
}

func (e *PipelineError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
