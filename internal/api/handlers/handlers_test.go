package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"feedwatch-go/internal/config"
	"feedwatch-go/internal/models"
	"feedwatch-go/internal/services/activitylog"
	"feedwatch-go/internal/services/capture"
	"feedwatch-go/internal/services/filters"
	"feedwatch-go/internal/services/framestore"
)

type testEnv struct {
	router   *gin.Engine
	store    *framestore.Store
	registry *filters.Registry
	activity *activitylog.Log
	cameras  *capture.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Cameras: []config.CameraDef{
			{ID: "A", URL: "http://cam-a", Mode: "snapshot", Enabled: true},
			{ID: "B", URL: "http://cam-b", Mode: "snapshot", Enabled: true},
		},
		VLMCamera:       "A",
		CaptureInterval: time.Second,
		EvalInterval:    3 * time.Second,
		VLMModel:        "gpt-4o",
	}

	store := framestore.New([]string{"A", "B"})
	activity := activitylog.New(50)
	registry := filters.NewRegistry()

	cameras, err := capture.NewManager(cfg, store, activity, nil)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	systemHandler := NewSystemHandler(cfg, cameras, registry, false)
	cameraHandler := NewCameraHandler(cameras, store)
	filterHandler := NewFilterHandler(registry)
	activityHandler := NewActivityHandler(activity)

	router := gin.New()
	router.GET("/", systemHandler.Info)
	router.GET("/health", systemHandler.Health)
	api := router.Group("/api")
	{
		api.GET("/config", systemHandler.RuntimeConfig)
		api.GET("/activity", activityHandler.ListActivity)
		api.GET("/cameras", cameraHandler.ListCameras)
		api.GET("/cameras/:id/frame", cameraHandler.GetFrame)
		api.POST("/cameras/:id/toggle", cameraHandler.ToggleCamera)
		api.POST("/cameras/:id/move", cameraHandler.MoveCamera)
		api.POST("/cameras/:id/select", cameraHandler.SelectCamera)
		api.GET("/filters", filterHandler.ListFilters)
		api.POST("/filters", filterHandler.CreateFilter)
		api.DELETE("/filters/:id", filterHandler.DeleteFilter)
		api.POST("/filters/:id/move", filterHandler.MoveFilter)
		api.POST("/filters/:id/toggle", filterHandler.ToggleFilter)
	}

	return &testEnv{
		router:   router,
		store:    store,
		registry: registry,
		activity: activity,
		cameras:  cameras,
	}
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestListCameras(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/cameras", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var cams []models.CameraResponse
	decode(t, w, &cams)
	if len(cams) != 2 {
		t.Fatalf("cameras = %d, want 2", len(cams))
	}
	if cams[0].ID != "A" || !cams[0].Selected {
		t.Errorf("first camera = %+v, want A selected", cams[0])
	}
	if cams[0].HasFrame {
		t.Error("camera reports a frame before any capture")
	}
}

func TestGetFrame(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/cameras/A/frame", nil)
	var resp models.FrameResponse
	decode(t, w, &resp)
	if resp.Success {
		t.Error("expected success=false before any capture")
	}
	if resp.Error == "" {
		t.Error("expected an error message before any capture")
	}

	env.store.Set("A", []byte{0xFF, 0xD8, 0xFF, 0xD9}, time.Now())

	w = env.do(t, http.MethodGet, "/api/cameras/A/frame", nil)
	decode(t, w, &resp)
	if !resp.Success {
		t.Fatalf("expected success=true, got error %q", resp.Error)
	}
	if !strings.HasPrefix(resp.Image, "data:image/jpeg;base64,") {
		t.Errorf("image = %q, want a JPEG data URI", resp.Image)
	}
	if resp.Timestamp <= 0 {
		t.Errorf("timestamp = %v, want positive unix seconds", resp.Timestamp)
	}
}

func TestGetFrameDisabledCamera(t *testing.T) {
	env := newTestEnv(t)

	env.store.Set("A", []byte{0xFF, 0xD8, 0xFF, 0xD9}, time.Now())
	if _, err := env.cameras.Toggle("A"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	var resp models.FrameResponse
	decode(t, env.do(t, http.MethodGet, "/api/cameras/A/frame", nil), &resp)
	if resp.Success {
		t.Error("disabled camera served a frame")
	}
	if !strings.Contains(resp.Error, "disabled") {
		t.Errorf("error = %q, want a disabled indicator", resp.Error)
	}
}

func TestToggleCamera(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/cameras/A/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]bool
	decode(t, w, &resp)
	if resp["enabled"] {
		t.Error("expected enabled=false after first toggle")
	}

	if w := env.do(t, http.MethodPost, "/api/cameras/Z/toggle", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown camera status = %d, want 404", w.Code)
	}
}

func TestMoveCamera(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/cameras/B/move", models.MoveRequest{Direction: -1})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var cams []models.CameraResponse
	decode(t, env.do(t, http.MethodGet, "/api/cameras", nil), &cams)
	if cams[0].ID != "B" {
		t.Errorf("first camera = %s after move, want B", cams[0].ID)
	}

	if w := env.do(t, http.MethodPost, "/api/cameras/A/move", models.MoveRequest{Direction: 5}); w.Code != http.StatusBadRequest {
		t.Errorf("bad direction status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/cameras/A/move", map[string]string{}); w.Code != http.StatusBadRequest {
		t.Errorf("missing direction status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/cameras/Z/move", models.MoveRequest{Direction: 1}); w.Code != http.StatusNotFound {
		t.Errorf("unknown camera status = %d, want 404", w.Code)
	}
}

func TestSelectCamera(t *testing.T) {
	env := newTestEnv(t)

	if w := env.do(t, http.MethodPost, "/api/cameras/B/select", nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := env.cameras.VLMCamera(); got != "B" {
		t.Errorf("VLM camera = %q, want B", got)
	}
	if w := env.do(t, http.MethodPost, "/api/cameras/Z/select", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown camera status = %d, want 404", w.Code)
	}
}

func TestCreateAndListFilters(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/filters", models.CreateFilterRequest{Prompt: "Is there a person?"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var created models.Filter
	decode(t, w, &created)
	if created.ID == "" || !created.IsActive || created.Order != 0 {
		t.Errorf("created filter = %+v, want active with order 0", created)
	}

	// Whitespace-only prompts are rejected.
	if w := env.do(t, http.MethodPost, "/api/filters", models.CreateFilterRequest{Prompt: "   "}); w.Code != http.StatusBadRequest {
		t.Errorf("blank prompt status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/filters", map[string]string{}); w.Code != http.StatusBadRequest {
		t.Errorf("missing prompt status = %d, want 400", w.Code)
	}

	var list []models.FilterResponse
	decode(t, env.do(t, http.MethodGet, "/api/filters", nil), &list)
	if len(list) != 1 {
		t.Fatalf("filters = %d, want 1", len(list))
	}
	if list[0].Verdict != models.VerdictIndeterminate {
		t.Errorf("unevaluated filter verdict = %q, want indeterminate", list[0].Verdict)
	}
}

func TestFilterVerdictInList(t *testing.T) {
	env := newTestEnv(t)

	f, _ := env.registry.Add("Is the door open?")
	env.registry.CompleteEvaluation(f.ID, "Yes, it is open.", time.Now())

	var list []models.FilterResponse
	decode(t, env.do(t, http.MethodGet, "/api/filters", nil), &list)
	if list[0].Verdict != models.VerdictPositive {
		t.Errorf("verdict = %q, want positive", list[0].Verdict)
	}
	if list[0].Result != "Yes, it is open." {
		t.Errorf("result = %q, want the raw model text", list[0].Result)
	}
}

func TestDeleteFilter(t *testing.T) {
	env := newTestEnv(t)

	f1, _ := env.registry.Add("first")
	env.registry.Add("second")

	if w := env.do(t, http.MethodDelete, "/api/filters/"+f1.ID, nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var list []models.FilterResponse
	decode(t, env.do(t, http.MethodGet, "/api/filters", nil), &list)
	if len(list) != 1 || list[0].Order != 0 {
		t.Errorf("remaining filters = %+v, want one renumbered to order 0", list)
	}

	if w := env.do(t, http.MethodDelete, "/api/filters/"+f1.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestMoveAndToggleFilter(t *testing.T) {
	env := newTestEnv(t)

	f1, _ := env.registry.Add("first")
	env.registry.Add("second")

	if w := env.do(t, http.MethodPost, "/api/filters/"+f1.ID+"/move", models.MoveRequest{Direction: 1}); w.Code != http.StatusOK {
		t.Fatalf("move status = %d, want 200", w.Code)
	}
	var list []models.FilterResponse
	decode(t, env.do(t, http.MethodGet, "/api/filters", nil), &list)
	if list[0].Prompt != "second" || list[1].Prompt != "first" {
		t.Errorf("order after move = %q,%q, want second,first", list[0].Prompt, list[1].Prompt)
	}

	w := env.do(t, http.MethodPost, "/api/filters/"+f1.ID+"/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200", w.Code)
	}
	var resp map[string]bool
	decode(t, w, &resp)
	if resp["is_active"] {
		t.Error("expected is_active=false after first toggle")
	}
}

func TestActivityCursor(t *testing.T) {
	env := newTestEnv(t)

	env.activity.Append(models.EntryInfo, "one")
	env.activity.Append(models.EntryInfo, "two")
	env.activity.Append(models.EntryInfo, "three")

	var resp struct {
		Entries  []models.LogEntry `json:"entries"`
		LatestID uint64            `json:"latest_id"`
	}
	decode(t, env.do(t, http.MethodGet, "/api/activity", nil), &resp)
	if len(resp.Entries) != 3 || resp.LatestID != 3 {
		t.Fatalf("entries = %d latest = %d, want 3 and 3", len(resp.Entries), resp.LatestID)
	}

	decode(t, env.do(t, http.MethodGet, "/api/activity?since=2", nil), &resp)
	if len(resp.Entries) != 1 || resp.Entries[0].Message != "three" {
		t.Errorf("entries after cursor 2 = %+v, want just 'three'", resp.Entries)
	}

	// An empty poll keeps the client's cursor.
	decode(t, env.do(t, http.MethodGet, "/api/activity?since=3", nil), &resp)
	if len(resp.Entries) != 0 || resp.LatestID != 3 {
		t.Errorf("empty poll = %d entries latest %d, want 0 and 3", len(resp.Entries), resp.LatestID)
	}

	if w := env.do(t, http.MethodGet, "/api/activity?since=abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad cursor status = %d, want 400", w.Code)
	}
}

func TestHealthAndConfig(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}
	var health map[string]interface{}
	decode(t, w, &health)
	if health["status"] != "healthy" {
		t.Errorf("health status field = %v, want healthy", health["status"])
	}

	var cfg models.RuntimeConfigResponse
	decode(t, env.do(t, http.MethodGet, "/api/config", nil), &cfg)
	if cfg.CaptureIntervalMS != 1000 || cfg.EvalIntervalMS != 3000 {
		t.Errorf("intervals = %d/%d ms, want 1000/3000", cfg.CaptureIntervalMS, cfg.EvalIntervalMS)
	}
	if cfg.VLMCamera != "A" || len(cfg.Cameras) != 2 {
		t.Errorf("config = %+v, want VLM camera A and 2 cameras", cfg)
	}
}
