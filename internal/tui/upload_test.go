package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/loglens/internal/api"
	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/upload"
)

type fakeUploader struct {
	calls    int
	filename string
	body     string
	resp     *domain.UploadResponse
	err      error
}

func (f *fakeUploader) UploadLog(_ context.Context, filename string, r io.Reader) (*domain.UploadResponse, error) {
	f.calls++
	f.filename = filename
	b, _ := io.ReadAll(r)
	f.body = string(b)
	return f.resp, f.err
}

func writeLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o644))
	return path
}

func TestUploadModel_SubmitWithoutFile(t *testing.T) {
	u := &fakeUploader{}
	m := NewUpload(context.Background(), u, clock.NewMock(), "")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, upload.ErrNoFile.Error(), m.Alert())
	assert.False(t, m.Workflow().Busy())
	assert.Zero(t, u.calls)
}

func TestUploadModel_UnreadablePath(t *testing.T) {
	m := NewUpload(context.Background(), &fakeUploader{}, clock.NewMock(), filepath.Join(t.TempDir(), "missing.log"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.Alert(), "Cannot read")
	assert.False(t, m.Workflow().Busy())
}

func TestUploadModel_SuccessFlow(t *testing.T) {
	path := writeLog(t)
	mock := clock.NewMock()
	u := &fakeUploader{resp: &domain.UploadResponse{
		Status:     "success",
		AnalysisID: 9,
		Anomalies:  []domain.RawAnomaly{{}},
	}}
	m := NewUpload(context.Background(), u, mock, path)

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.Workflow().Busy())
	assert.Contains(t, m.View(), "Processing access.log...")

	mock.Add(3 * time.Second)
	assert.Equal(t, 3*time.Second, m.Elapsed())

	// Submit while uploading is ignored.
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	uploading, ok := m.Workflow().State().(upload.Uploading)
	require.True(t, ok)
	msg := m.uploadCmd(uploading.File)()
	assert.Equal(t, 1, u.calls)
	assert.Equal(t, "access.log", u.filename)
	assert.Equal(t, "line one\nline two\n", u.body)

	m, _ = m.Update(msg)
	assert.False(t, m.Workflow().Busy())
	assert.Equal(t, 9, m.AnalysisID())
	require.Len(t, m.Workflow().Anomalies(), 1)
	assert.Equal(t, api.DefaultAnomalyType, m.Workflow().Anomalies()[0].AnomalyType)
	assert.Contains(t, m.View(), "Detected Anomalies (1)")

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenAnalysisMsg{ID: 9}, cmd())
}

func TestUploadModel_PreviewWithoutAnalysisID(t *testing.T) {
	conf := 0.9
	u := &fakeUploader{resp: &domain.UploadResponse{
		Anomalies: []domain.RawAnomaly{{ConfidenceScore: &conf}},
	}}
	m := NewUpload(context.Background(), u, clock.NewMock(), writeLog(t))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	uploading, ok := m.Workflow().State().(upload.Uploading)
	require.True(t, ok)
	m, _ = m.Update(m.uploadCmd(uploading.File)())

	assert.True(t, m.Done())
	assert.Zero(t, m.AnalysisID())
	view := m.View()
	assert.Contains(t, view, "Detected Anomalies (1)")
	assert.Contains(t, view, "HIGH")
	assert.Contains(t, view, "Upload complete.")
	assert.NotContains(t, view, "Analysis #")
	assert.NotContains(t, view, "ctrl+o")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Nil(t, cmd)
	assert.True(t, m.Done())
}

func TestUploadModel_FailureShowsAlert(t *testing.T) {
	path := writeLog(t)
	m := NewUpload(context.Background(), &fakeUploader{}, clock.NewMock(), path)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Workflow().Busy())

	m, _ = m.Update(UploadDoneMsg{Err: &api.Error{StatusCode: 400, Message: "Invalid file format", Structured: true}})
	assert.False(t, m.Workflow().Busy())
	assert.Contains(t, m.Alert(), upload.FailureAlert)
	assert.Contains(t, m.Alert(), "Invalid file format")
	assert.Zero(t, m.AnalysisID())

	// No analysis to open after a failure.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Nil(t, cmd)
}

func TestUploadModel_StaleCompletionIgnored(t *testing.T) {
	m := NewUpload(context.Background(), &fakeUploader{}, clock.NewMock(), "")
	m, _ = m.Update(UploadDoneMsg{Response: &domain.UploadResponse{AnalysisID: 4}})
	assert.Zero(t, m.AnalysisID())
	assert.IsType(t, upload.Idle{}, m.Workflow().State())
}
