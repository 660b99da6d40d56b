package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ChartGrader/internal/model"
	"ChartGrader/internal/recorder"
	"ChartGrader/internal/strategy"
)

func f(v float64) *float64 { return &v }

// fakeBotAPI records sendMessage payloads and serves getFile plus file downloads.
type fakeBotAPI struct {
	mu       sync.Mutex
	sent     []map[string]interface{}
	failures int
}

func (api *fakeBotAPI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			api.mu.Lock()
			defer api.mu.Unlock()
			if api.failures > 0 {
				api.failures--
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decode sendMessage: %v", err)
			}
			api.sent = append(api.sent, payload)
			fmt.Fprint(w, `{"ok":true}`)
		case strings.HasSuffix(r.URL.Path, "/getFile"):
			if r.URL.Query().Get("file_id") != "big" {
				fmt.Fprint(w, `{"ok":false,"description":"file not found"}`)
				return
			}
			fmt.Fprint(w, `{"ok":true,"result":{"file_path":"photos/chart.png"}}`)
		case r.URL.Path == "/file/botTOKEN/photos/chart.png":
			w.Write([]byte("PNGDATA"))
		default:
			t.Errorf("unexpected request %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestNotifier(t *testing.T, api *fakeBotAPI) *TelegramNotifier {
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)
	n := NewTelegramNotifier("TOKEN", "42", "")
	n.APIBase = srv.URL
	return n
}

func TestSend(t *testing.T) {
	api := &fakeBotAPI{}
	n := newTestNotifier(t, api)
	if err := n.Send("<b>hi</b>"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(api.sent) != 1 || api.sent[0]["chat_id"] != "42" || api.sent[0]["parse_mode"] != "HTML" {
		t.Errorf("unexpected payload: %v", api.sent)
	}
}

func TestSend_StatusError(t *testing.T) {
	api := &fakeBotAPI{failures: 1}
	n := newTestNotifier(t, api)
	if err := n.Send("x"); err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Errorf("expected status error, got %v", err)
	}
}

func TestSendWithRetry_RecoversAfterFailure(t *testing.T) {
	api := &fakeBotAPI{failures: 1}
	n := newTestNotifier(t, api)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.SendWithRetry(ctx, "x", 2); err != nil {
		t.Fatalf("expected success on second attempt, got %v", err)
	}
	if len(api.sent) != 1 {
		t.Errorf("expected one delivered message, got %d", len(api.sent))
	}
}

func TestSendWithRetry_Exhausted(t *testing.T) {
	api := &fakeBotAPI{failures: 5}
	n := newTestNotifier(t, api)
	if err := n.SendWithRetry(context.Background(), "x", 0); err == nil || !strings.Contains(err.Error(), "retries exhausted") {
		t.Errorf("expected exhaustion error, got %v", err)
	}
}

func TestDownloadFile(t *testing.T) {
	n := newTestNotifier(t, &fakeBotAPI{})
	data, err := n.DownloadFile(context.Background(), "big")
	if err != nil || string(data) != "PNGDATA" {
		t.Fatalf("download = %q, %v", data, err)
	}
	if _, err := n.DownloadFile(context.Background(), "missing"); err == nil {
		t.Error("expected getFile failure")
	}
}

func TestImageFileID(t *testing.T) {
	var u telegramUpdate
	if err := json.Unmarshal([]byte(`{"update_id":1,"message":{"photo":[
		{"file_id":"small","width":90,"height":60},
		{"file_id":"big","width":1280,"height":720},
		{"file_id":"mid","width":320,"height":180}]}}`), &u); err != nil {
		t.Fatal(err)
	}
	if got := u.imageFileID(); got != "big" {
		t.Errorf("expected largest photo, got %q", got)
	}

	var doc telegramUpdate
	json.Unmarshal([]byte(`{"update_id":2,"message":{"document":{"file_id":"d1","mime_type":"image/png"}}}`), &doc)
	if got := doc.imageFileID(); got != "d1" {
		t.Errorf("expected image document, got %q", got)
	}

	var pdf telegramUpdate
	json.Unmarshal([]byte(`{"update_id":3,"message":{"document":{"file_id":"p1","mime_type":"application/pdf"}}}`), &pdf)
	if got := pdf.imageFileID(); got != "" {
		t.Errorf("non-image documents should be ignored, got %q", got)
	}
}

func TestDispatch(t *testing.T) {
	api := &fakeBotAPI{}
	n := newTestNotifier(t, api)
	ctx := context.Background()

	var gotImage []byte
	onPhoto := func(_ context.Context, image []byte) string {
		gotImage = image
		return "graded"
	}
	onCommand := func(cmd string) string { return "echo " + cmd }

	var photo, text telegramUpdate
	json.Unmarshal([]byte(`{"update_id":1,"message":{"photo":[{"file_id":"big","width":10,"height":10}]}}`), &photo)
	json.Unmarshal([]byte(`{"update_id":2,"message":{"text":"  /signals "}}`), &text)

	n.dispatch(ctx, photo, onCommand, onPhoto)
	n.dispatch(ctx, text, onCommand, onPhoto)

	if string(gotImage) != "PNGDATA" {
		t.Errorf("photo handler got %q", gotImage)
	}
	if len(api.sent) != 2 || api.sent[0]["text"] != "graded" || api.sent[1]["text"] != "echo /signals" {
		t.Errorf("unexpected replies: %v", api.sent)
	}
}

func TestFetchUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") != "7" {
			t.Errorf("offset = %s", r.URL.Query().Get("offset"))
		}
		fmt.Fprint(w, `{"ok":true,"result":[{"update_id":7,"message":{"text":"/digest"}}]}`)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("TOKEN", "42", "")
	n.APIBase = srv.URL
	updates, err := n.fetchUpdates(context.Background(), srv.Client(), 7, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(updates) != 1 || updates[0].Message.Text != "/digest" {
		t.Errorf("unexpected updates: %+v", updates)
	}
}

func TestFormatAnalysisReport(t *testing.T) {
	in := &model.AnalysisInput{
		ActiveSignalIDs: []string{"high-buy-vol", "macd-green", "close-9ema", "below-vwap"},
		CurrentPrice:    f(10), SupportLevel: f(9.5), ResistanceLevel: f(11),
	}
	rec := model.NewAnalysisRecord("test", "ABC", 0.87, in, strategy.AnalyzeChart(in))
	msg := FormatAnalysisReport(rec)

	for _, want := range []string{"<b>ABC</b>", "Grade <b>" + string(rec.Result.Grade) + "</b>",
		"+15 High Buying Volume", "⛔", "Entry $10.00", "Stop $9.41", "Target $11.00", "Confidence: 87%"} {
		if !strings.Contains(msg, want) {
			t.Errorf("report missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatAnalysisReport_NoGo(t *testing.T) {
	in := &model.AnalysisInput{ActiveSignalIDs: []string{"high-buy-vol"}, ActiveNoGoIDs: []string{"low-liquidity"}}
	rec := model.NewAnalysisRecord("test", "", 0, in, strategy.AnalyzeChart(in))
	msg := FormatAnalysisReport(rec)
	if !strings.Contains(msg, "Grade <b>F</b>") || !strings.Contains(msg, "No-go:") || !strings.Contains(msg, "Stay out") {
		t.Errorf("unexpected no-go report:\n%s", msg)
	}
	if strings.Contains(msg, "Entry") {
		t.Error("no price was given, entry line should be omitted")
	}
}

func TestFormatDigest(t *testing.T) {
	since := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	empty := FormatDigest(&recorder.Summary{Since: since, ByGrade: map[model.Grade]int{}})
	if !strings.Contains(empty, "No charts graded") {
		t.Errorf("unexpected empty digest: %s", empty)
	}

	msg := FormatDigest(&recorder.Summary{
		Since: since, Total: 3, ShouldEnter: 2, AvgScore: 27,
		ByGrade: map[model.Grade]int{model.GradeBPlus: 2, model.GradeF: 1},
	})
	for _, want := range []string{"2026-01-02 08:00", "Charts graded: 3", "Worth taking: 2", "Average score: 27.0", "GOOD SETUP: 2", "SKIP!: 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("digest missing %q:\n%s", want, msg)
		}
	}
	if strings.Index(msg, "GOOD SETUP") > strings.Index(msg, "SKIP!") {
		t.Error("grades should be listed best first")
	}
}

func TestFormatCatalog(t *testing.T) {
	msg := FormatCatalog()
	for _, want := range []string{"<code>high-buy-vol</code> +15", "<code>macd-red</code> -12", "<code>halt-risk</code>"} {
		if !strings.Contains(msg, want) {
			t.Errorf("catalog missing %q", want)
		}
	}
}
