package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haldor/keepintouch/internal/logservice"
	"github.com/haldor/keepintouch/internal/models"
	"github.com/haldor/keepintouch/internal/testutil"
)

// testEnv sets up a temp store, service, and router for one schema.
func testEnv(t *testing.T, schema models.Schema) (*logservice.Service, http.Handler) {
	t.Helper()
	store := testutil.TestStore(t)
	svc := logservice.NewService(store, schema)
	return svc, NewRouter(svc)
}

func postJSON(t *testing.T, router http.Handler, path string, v any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return env
}

func TestCollectCallLog(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	rec := map[string]any{
		"datetime": "2024-01-01 10:00:00",
		"sender":   "Tom",
		"log_type": "incoming",
	}
	w := postJSON(t, router, "/collect_call_log", rec)
	if w.Code != http.StatusOK {
		t.Fatalf("collect = %d, body = %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env["status"] != "success" {
		t.Errorf("status = %v", env["status"])
	}
	if env["message"] != "Call log data collected successfully" {
		t.Errorf("message = %v", env["message"])
	}

	// The exact object comes back from the list endpoint.
	w = get(t, router, "/get_call_logs")
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	env = decodeEnvelope(t, w)
	data := env["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("len(data) = %d, want 1", len(data))
	}
	got := data[0].(map[string]any)
	for k, v := range rec {
		if got[k] != v {
			t.Errorf("data[0][%q] = %v, want %v", k, got[k], v)
		}
	}
}

func TestCollectMissingField(t *testing.T) {
	svc, router := testEnv(t, models.CallsSchema)

	w := postJSON(t, router, "/collect_call_log", map[string]any{
		"datetime": "2024-01-01 10:00:00",
		"sender":   "Tom",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing field = %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env["status"] != "error" {
		t.Errorf("status = %v", env["status"])
	}
	if env["message"] == nil || env["message"] == "" {
		t.Error("error envelope should carry a message")
	}

	recs, _ := svc.List(context.Background())
	if len(recs) != 0 {
		t.Errorf("store changed by rejected submission: %v", recs)
	}
}

func TestCollectInvalidLogType(t *testing.T) {
	svc, router := testEnv(t, models.CallsSchema)

	w := postJSON(t, router, "/collect_call_log", map[string]any{
		"datetime": "2024-01-01 10:00:00",
		"sender":   "Tom",
		"log_type": "forwarded",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad log_type = %d, want 400", w.Code)
	}
	recs, _ := svc.List(context.Background())
	if len(recs) != 0 {
		t.Error("store changed by rejected submission")
	}
}

func TestCollectInvalidTimestamp(t *testing.T) {
	svc, router := testEnv(t, models.CallsSchema)

	w := postJSON(t, router, "/collect_call_log", map[string]any{
		"datetime": "2024/01/01 10:00:00",
		"sender":   "Tom",
		"log_type": "incoming",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad datetime = %d, want 400", w.Code)
	}
	recs, _ := svc.List(context.Background())
	if len(recs) != 0 {
		t.Error("store changed by rejected submission")
	}
}

func TestCollectInvalidJSONBody(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	r := httptest.NewRequest(http.MethodPost, "/collect_call_log", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("broken JSON = %d, want 400", w.Code)
	}
}

func TestCollectExtraFieldsStoredVerbatim(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	rec := map[string]any{
		"datetime": "2024-01-01 10:00:00",
		"sender":   "Tom",
		"log_type": "outgoing",
		"device":   "pixel",
		"starred":  true,
	}
	w := postJSON(t, router, "/collect_call_log", rec)
	if w.Code != http.StatusOK {
		t.Fatalf("collect = %d, body = %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, get(t, router, "/get_call_logs"))
	got := env["data"].([]any)[0].(map[string]any)
	if got["device"] != "pixel" || got["starred"] != true {
		t.Errorf("extra fields rewritten: %v", got)
	}
}

func TestListEmptyStore(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	w := get(t, router, "/get_call_logs")
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	data, ok := env["data"].([]any)
	if !ok {
		t.Fatalf("data missing from envelope: %s", w.Body.String())
	}
	if len(data) != 0 {
		t.Errorf("len(data) = %d, want 0", len(data))
	}
}

func TestListIdempotent(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	postJSON(t, router, "/collect_call_log", map[string]any{
		"datetime": "2024-01-01 10:00:00",
		"sender":   "Tom",
		"log_type": "incoming",
	})

	first := get(t, router, "/get_call_logs").Body.String()
	second := get(t, router, "/get_call_logs").Body.String()
	if first != second {
		t.Error("two lists without mutation differ")
	}
}

func TestAnalyzeFlagsStaleSenders(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	now := time.Now()
	for _, r := range []map[string]any{
		{"datetime": now.Add(-24 * time.Hour).Format(models.TimeLayout), "sender": "Fresh", "log_type": "incoming"},
		{"datetime": now.Add(-10 * 24 * time.Hour).Format(models.TimeLayout), "sender": "Stale", "log_type": "outgoing"},
	} {
		if w := postJSON(t, router, "/collect_call_log", r); w.Code != http.StatusOK {
			t.Fatalf("collect = %d", w.Code)
		}
	}

	w := get(t, router, "/analyze_call_logs")
	if w.Code != http.StatusOK {
		t.Fatalf("analyze = %d, body = %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	insights := env["insights"].([]any)
	if len(insights) != 1 {
		t.Fatalf("insights = %v, want 1 entry", insights)
	}
	if insights[0] != "Stale hasn't called in a while. Check on them!" {
		t.Errorf("insight = %v", insights[0])
	}
}

func TestAnalyzeEmptyStore(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	w := get(t, router, "/analyze_call_logs")
	if w.Code != http.StatusOK {
		t.Fatalf("analyze = %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	insights, ok := env["insights"].([]any)
	if !ok {
		t.Fatalf("insights missing from envelope: %s", w.Body.String())
	}
	if len(insights) != 0 {
		t.Errorf("insights = %v, want none", insights)
	}
}

func TestEmailRoutes(t *testing.T) {
	_, router := testEnv(t, models.EmailSchema)

	w := postJSON(t, router, "/collect_email", map[string]any{
		"datetime": "2024-01-01 10:00:00",
		"sender":   "Jane Smith",
		"type":     "received",
		"subject":  "Meeting Reminder",
		"body":     "See you at 10.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("collect email = %d, body = %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env["message"] != "Email data collected successfully" {
		t.Errorf("message = %v", env["message"])
	}

	// Subject is required.
	w = postJSON(t, router, "/collect_email", map[string]any{
		"datetime": "2024-01-01 10:00:00",
		"sender":   "Jane Smith",
		"type":     "received",
		"body":     "no subject",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("email without subject = %d, want 400", w.Code)
	}

	if w := get(t, router, "/get_email_data"); w.Code != http.StatusOK {
		t.Errorf("list email = %d", w.Code)
	}
	if w := get(t, router, "/analyze_emails"); w.Code != http.StatusOK {
		t.Errorf("analyze email = %d", w.Code)
	}
}

func TestSMSRoutes(t *testing.T) {
	_, router := testEnv(t, models.SMSSchema)

	w := postJSON(t, router, "/collect_sms", map[string]any{
		"datetime": "2024-01-01 10:00:00",
		"sender":   "Jane Smith",
		"type":     "sent",
		"content":  "on my way",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("collect sms = %d, body = %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env["message"] != "SMS data collected successfully" {
		t.Errorf("message = %v", env["message"])
	}

	if w := get(t, router, "/get_sms_data"); w.Code != http.StatusOK {
		t.Errorf("list sms = %d", w.Code)
	}
	if w := get(t, router, "/analyze_sms"); w.Code != http.StatusOK {
		t.Errorf("analyze sms = %d", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	for _, path := range []string{"/health/live", "/health/ready"} {
		w := get(t, router, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s = %d, want 200", path, w.Code)
		}
	}
}

func TestWrongMethodRejected(t *testing.T) {
	_, router := testEnv(t, models.CallsSchema)

	w := get(t, router, "/collect_call_log")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET collect = %d, want 405", w.Code)
	}
}
