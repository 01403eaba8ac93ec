// Package upload implements the upload-and-await-results workflow.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vburojevic/loglens/internal/api"
	"github.com/vburojevic/loglens/internal/domain"
)

var (
	// ErrNoFile is returned when submitting without a selected file.
	ErrNoFile = errors.New("please select a log file to upload")

	// ErrBusy is returned when submitting while an upload is in flight.
	ErrBusy = errors.New("an upload is already in progress")
)

// FailureAlert heads the alert shown for every failed upload
const FailureAlert = "Error processing file. Check backend logs and network connection."

// File is a log file chosen for upload
type File struct {
	Name string
	Path string
	Size int64
}

// FileFromPath stats path and returns it as an uploadable File.
func FileFromPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}
	return File{Name: filepath.Base(path), Path: path, Size: info.Size()}, nil
}

// State is the workflow status. It is one of Idle, Uploading, Succeeded or Failed.
type State interface {
	isState()
}

// Idle waits for a file and a submit; Pending is nil when no file is selected
type Idle struct {
	Pending *File
}

// Uploading has exactly one submission in flight
type Uploading struct {
	File File
}

// Succeeded holds the outcome of the last upload
type Succeeded struct {
	AnalysisID   int
	TotalEntries int
	AnomalyCount int
	Anomalies    []domain.Anomaly
}

// Failed holds the alert raised by the last upload. Message is the
// human-readable cause, passed through verbatim from the backend when it sent one.
type Failed struct {
	Message string
	Err     error
}

func (Idle) isState()      {}
func (Uploading) isState() {}
func (Succeeded) isState() {}
func (Failed) isState()    {}

// Uploader submits a log file to the backend
type Uploader interface {
	UploadLog(ctx context.Context, filename string, r io.Reader) (*domain.UploadResponse, error)
}

// Workflow is the upload session. The zero value is not usable; call New.
type Workflow struct {
	state     State
	anomalies []domain.Anomaly
}

// New creates an idle workflow with no file selected.
func New() *Workflow {
	return &Workflow{state: Idle{}}
}

// State returns the current state.
func (w *Workflow) State() State {
	return w.state
}

// Anomalies returns the preview anomalies of the most recent successful upload.
func (w *Workflow) Anomalies() []domain.Anomaly {
	return w.anomalies
}

// Busy reports whether an upload is in flight.
func (w *Workflow) Busy() bool {
	_, ok := w.state.(Uploading)
	return ok
}

// Selected returns the file attached for the next submit, if any.
func (w *Workflow) Selected() (File, bool) {
	if idle, ok := w.state.(Idle); ok && idle.Pending != nil {
		return *idle.Pending, true
	}
	return File{}, false
}

// Select attaches f for the next submit, replacing any earlier selection.
// Selection is ignored while an upload is in flight.
func (w *Workflow) Select(f File) bool {
	if w.Busy() {
		return false
	}
	w.state = Idle{Pending: &f}
	return true
}

// Submit starts an upload. It returns ErrNoFile when nothing is selected and
// ErrBusy when an upload is already running; neither changes any state.
// On success the previous preview is cleared and the file to send is returned.
func (w *Workflow) Submit() (File, error) {
	if w.Busy() {
		return File{}, ErrBusy
	}
	f, ok := w.Selected()
	if !ok {
		return File{}, ErrNoFile
	}
	w.anomalies = nil
	w.state = Uploading{File: f}
	return f, nil
}

// Complete records a successful backend response. The selected file is
// released. Calls outside Uploading are ignored.
func (w *Workflow) Complete(resp *domain.UploadResponse) bool {
	if !w.Busy() {
		return false
	}
	s := Succeeded{}
	if resp != nil {
		s.AnalysisID = resp.AnalysisID
		s.TotalEntries = resp.TotalEntries
		s.AnomalyCount = resp.AnomalyCount
		if resp.Anomalies != nil {
			s.Anomalies = api.NormalizePreview(resp.Anomalies)
		}
	}
	w.anomalies = s.Anomalies
	w.state = s
	return true
}

// Fail records a failed upload and raises the failure alert. The selected
// file is released. Calls outside Uploading are ignored.
func (w *Workflow) Fail(err error) bool {
	if !w.Busy() {
		return false
	}
	msg := FailureAlert
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	w.state = Failed{Message: msg, Err: err}
	return true
}

// Settle returns a finished workflow to Idle with no file selected. The
// preview anomalies stay available for display.
func (w *Workflow) Settle() {
	switch w.state.(type) {
	case Succeeded, Failed:
		w.state = Idle{}
	}
}

// Send opens f and hands it to u. It performs exactly one upload request.
func Send(ctx context.Context, u Uploader, f File) (*domain.UploadResponse, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return u.UploadLog(ctx, f.Name, fh)
}

// Run submits the selected file and blocks until the upload finishes. The
// returned state is the terminal Succeeded or Failed; the workflow itself is
// settled back to Idle before returning.
func (w *Workflow) Run(ctx context.Context, u Uploader) (State, error) {
	f, err := w.Submit()
	if err != nil {
		return w.state, err
	}
	resp, err := Send(ctx, u, f)
	if err != nil {
		w.Fail(err)
	} else {
		w.Complete(resp)
	}
	final := w.state
	w.Settle()
	return final, nil
}
