package logging

import "fmt"

// Recorder is a Logger that keeps every formatted message in memory.
type Recorder struct {
	Debugs   []string
	Infos    []string
	Warnings []string
	Errors   []string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debugf(format string, args ...any) {
	r.Debugs = append(r.Debugs, fmt.Sprintf(format, args...))
}

func (r *Recorder) Infof(format string, args ...any) {
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Recorder) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}
