package pipeline

// ProgressEvent reports one stage transition during a pipeline run.
// Current and Total count candidates during the scoring stage.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Current int    `json:"current,omitempty"`
	Total   int    `json:"total,omitempty"`
}

// ProgressCallback receives progress events. Callbacks may run from
// worker goroutines and must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

func (p *Pipeline) emit(event ProgressEvent) {
	if p.opts.OnProgress != nil {
		p.opts.OnProgress(event)
	}
}
