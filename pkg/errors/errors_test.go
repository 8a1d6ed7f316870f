package errors

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

type recordingHandler struct {
	errs   []*BillboardError
	panics []*PanicError
	builds []*BuildError
}

func (h *recordingHandler) HandleError(err *BillboardError) { h.errs = append(h.errs, err) }

func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func (h *recordingHandler) HandleBuildError(err *BuildError) { h.builds = append(h.builds, err) }

func withRecordingHandler(t *testing.T) *recordingHandler {
	t.Helper()
	handler := &recordingHandler{}
	SetHandler(handler)
	t.Cleanup(func() { SetHandler(nil) })
	return handler
}

func TestBillboardErrorFormat(t *testing.T) {
	err := &BillboardError{
		Op:   "assets.Load",
		Kind: KindAsset,
		Err:  fmt.Errorf("no such file"),
	}
	want := "assets.Load [asset]: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := &BillboardError{Op: "config.Load", Kind: KindConfig, Err: cause}
	if err.Unwrap() != cause {
		t.Error("Unwrap must return the underlying error")
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindAsset, "asset"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestReportStampsTimestamp(t *testing.T) {
	handler := withRecordingHandler(t)

	Report(&BillboardError{Op: "render.Frame", Kind: KindRender, Err: fmt.Errorf("bad")})
	if len(handler.errs) != 1 {
		t.Fatalf("handled errors = %d, want 1", len(handler.errs))
	}
	if handler.errs[0].Timestamp.IsZero() {
		t.Error("Report must fill a zero timestamp")
	}
}

func TestReportKeepsExistingTimestamp(t *testing.T) {
	handler := withRecordingHandler(t)

	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	Report(&BillboardError{Op: "x", Err: fmt.Errorf("y"), Timestamp: stamp})
	if !handler.errs[0].Timestamp.Equal(stamp) {
		t.Error("Report must not overwrite a set timestamp")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	handler := withRecordingHandler(t)
	Report(nil)
	ReportPanic(nil)
	ReportBuildError(nil)
	if len(handler.errs)+len(handler.panics)+len(handler.builds) != 0 {
		t.Error("nil reports must be ignored")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	handler := withRecordingHandler(t)

	func() {
		defer Recover("ticker.step")
		panic("lost frame")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("handled panics = %d, want 1", len(handler.panics))
	}
	p := handler.panics[0]
	if p.Op != "ticker.step" || p.Value != "lost frame" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("Recover must capture a stack trace")
	}
	want := "panic in ticker.step: lost frame"
	if p.Error() != want {
		t.Errorf("Error() = %q, want %q", p.Error(), want)
	}
}

func TestRecoverWithoutPanicIsQuiet(t *testing.T) {
	handler := withRecordingHandler(t)
	func() {
		defer Recover("calm")
	}()
	if len(handler.panics) != 0 {
		t.Error("Recover must not report when nothing panicked")
	}
}

func TestBuildErrorFormat(t *testing.T) {
	err := &BuildError{Widget: "site.Ticker", Recovered: "nil loop"}
	want := "panic in site.Ticker.Build(): nil loop"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("default handler = %T, want *LogHandler", DefaultHandler)
	}
}

// grabStack stands in for the Recover frame that CaptureStack skips past.
func grabStack() string { return CaptureStack() }

func TestCaptureStackNamesCaller(t *testing.T) {
	stack := grabStack()
	if !strings.Contains(stack, "errors.TestCaptureStackNamesCaller") {
		t.Errorf("stack does not name the caller:\n%s", stack)
	}
}
