package cli

import (
	"fmt"

	"github.com/vburojevic/loglens/internal/domain"
	"github.com/vburojevic/loglens/internal/upload"
)

// UploadCmd uploads a log file and prints the preview anomalies
type UploadCmd struct {
	File        string `arg:"" type:"path" help:"Proxy log file to upload (.txt, .log, .csv)"`
	NoAnomalies bool   `help:"Only print the upload acknowledgement"`
}

// Run executes the upload command
func (c *UploadCmd) Run(globals *Globals) error {
	f, err := upload.FileFromPath(c.File)
	if err != nil {
		return outputErrorCommon(globals, CodeFileError, err.Error())
	}
	globals.Debug("uploading %s (%d bytes) to %s", f.Path, f.Size, globals.APIURL)

	ctx, stop := commandContext()
	defer stop()

	w := upload.New()
	w.Select(f)
	final, err := w.Run(ctx, globals.Client())
	if err != nil {
		return outputErrorCommon(globals, CodeUploadFailed, err.Error())
	}

	switch st := final.(type) {
	case upload.Failed:
		code := CodeUploadFailed
		if st.Err != nil {
			if ec := apiErrorCode(st.Err); ec == CodeNetwork || ec == CodeMalformedResponse {
				code = ec
			}
		}
		return outputErrorCommon(globals, code, st.Message, upload.FailureAlert)
	case upload.Succeeded:
		emitter := globals.Emitter()
		ack := &domain.UploadResponse{
			Status:       "success",
			AnalysisID:   st.AnalysisID,
			TotalEntries: st.TotalEntries,
			AnomalyCount: st.AnomalyCount,
		}
		if err := emitter.Upload(f.Name, ack); err != nil {
			return err
		}
		if !c.NoAnomalies {
			if err := emitter.Anomalies(st.AnalysisID, st.Anomalies, true); err != nil {
				return err
			}
		}
		if emitter.Text() && !globals.Quiet && st.AnalysisID != 0 {
			fmt.Fprintf(globals.Stdout, "\nView full results: loglens results %d\n", st.AnalysisID)
		}
		return nil
	default:
		return outputErrorCommon(globals, CodeUploadFailed, fmt.Sprintf("unexpected upload state %T", final))
	}
}
