package export

// Reporter receives the diagnostic events of a run as they happen.
type Reporter interface {
	Headers(source string, raw []string)
	PreviewOnly()
	DirCreated(dir string)
	Row(outcome RowOutcome)
	Done(result *Result)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Headers(string, []string) {}
func (NopReporter) PreviewOnly()             {}
func (NopReporter) DirCreated(string)        {}
func (NopReporter) Row(RowOutcome)           {}
func (NopReporter) Done(*Result)             {}

// Recorder keeps every event in memory.
type Recorder struct {
	Source     string
	RawHeaders []string
	Previews   int
	Dirs       []string
	Rows       []RowOutcome
	Result     *Result
}

func (r *Recorder) Headers(source string, raw []string) {
	r.Source = source
	r.RawHeaders = append([]string(nil), raw...)
}

func (r *Recorder) PreviewOnly()           { r.Previews++ }
func (r *Recorder) DirCreated(dir string)  { r.Dirs = append(r.Dirs, dir) }
func (r *Recorder) Row(outcome RowOutcome) { r.Rows = append(r.Rows, outcome) }
func (r *Recorder) Done(result *Result)    { r.Result = result }
