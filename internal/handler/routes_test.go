package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/VETechnologiesCo/VPCO/internal/config"
	"github.com/VETechnologiesCo/VPCO/internal/content"
	"github.com/VETechnologiesCo/VPCO/internal/model"
	"github.com/VETechnologiesCo/VPCO/internal/repository"
	"github.com/VETechnologiesCo/VPCO/internal/service"
	"github.com/VETechnologiesCo/VPCO/internal/site"
	"github.com/VETechnologiesCo/VPCO/pkg/slack"
)

type testServer struct {
	handler  http.Handler
	contacts *repository.MemoryContactRepository
}

// newTestServer wires the full route table against a fresh in-memory store.
// webhookURL may be empty to leave notifications unconfigured.
func newTestServer(t *testing.T, webhookURL string) *testServer {
	t.Helper()

	siteContent, err := content.Default()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	contacts := repository.NewMemoryContactRepository()
	notifier := service.NewSlackNotifier(slack.NewWebhookClient(webhookURL, time.Second), time.UTC)

	rt := Router{
		Base:    New(nil, "*"),
		Contact: NewContactHandler(service.NewContactService(contacts, notifier)),
		Catalog: NewCatalogHandler(service.NewCatalogService(
			repository.NewStaticServiceRepository(siteContent.Services), siteContent.About)),
		Wix:  NewWixHandler(service.NewWixService(config.WixConfig{})),
		Site: site.Handler(site.FS()),
	}
	return &testServer{handler: rt.Handler(), contacts: contacts}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func decodeAPI(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestRoutes_Health(t *testing.T) {
	s := newTestServer(t, "")
	rec := s.do("GET", "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeAPI(t, rec)
	var data healthData
	_ = json.Unmarshal(resp.Data, &data)
	if !resp.Success || data.Status != "ok" || data.Timestamp == "" {
		t.Errorf("unexpected health response: %+v %+v", resp, data)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}

func TestRoutes_ServicesList(t *testing.T) {
	s := newTestServer(t, "")
	rec := s.do("GET", "/api/services", "")

	resp := decodeAPI(t, rec)
	var services []model.ServiceOffering
	_ = json.Unmarshal(resp.Data, &services)
	if rec.Code != http.StatusOK || !resp.Success || len(services) == 0 {
		t.Errorf("unexpected services response: %d %+v", rec.Code, resp)
	}
}

func TestRoutes_ServiceByID(t *testing.T) {
	s := newTestServer(t, "")

	rec := s.do("GET", "/api/services/2", "")
	resp := decodeAPI(t, rec)
	var svc model.ServiceOffering
	_ = json.Unmarshal(resp.Data, &svc)
	if rec.Code != http.StatusOK || svc.Name != "Real Estate Investment" {
		t.Errorf("unexpected service: %d %+v", rec.Code, svc)
	}

	rec = s.do("GET", "/api/services/99999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeAPI(t, rec); resp.Success || resp.Error != "Service not found" {
		t.Errorf("unexpected 404 body: %+v", resp)
	}
}

func TestRoutes_ContactSubmit_Valid(t *testing.T) {
	s := newTestServer(t, "")
	rec := s.do("POST", "/api/contact", `{"name":"Tester","email":"tester@example.com","message":"Hello"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeAPI(t, rec)
	var data struct {
		ID *int64 `json:"id"`
	}
	_ = json.Unmarshal(resp.Data, &data)
	if !resp.Success || data.ID == nil || *data.ID != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestRoutes_ContactSubmit_InvalidEmail(t *testing.T) {
	s := newTestServer(t, "")
	rec := s.do("POST", "/api/contact", `{"name":"Tester","email":"invalid-email","message":"Hello"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeAPI(t, rec); resp.Success || resp.Error != "Invalid email format" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestRoutes_ContactSubmit_MissingFieldsStoreNothing(t *testing.T) {
	s := newTestServer(t, "")
	bodies := []string{
		`{"email":"tester@example.com","message":"Hello"}`,
		`{"name":"Tester","message":"Hello"}`,
		`{"name":"Tester","email":"tester@example.com"}`,
		`{"name":"","email":"tester@example.com","message":"Hello"}`,
		`{}`,
	}
	for _, body := range bodies {
		rec := s.do("POST", "/api/contact", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
	}
	if n, _ := s.contacts.Count(context.Background()); n != 0 {
		t.Errorf("expected no stored submissions, got %d", n)
	}
}

func TestRoutes_ContactSubmit_SequentialIDs(t *testing.T) {
	s := newTestServer(t, "")
	body := `{"name":"Tester","email":"tester@example.com","message":"Hello"}`

	for i := int64(1); i <= 5; i++ {
		rec := s.do("POST", "/api/contact", body)
		resp := decodeAPI(t, rec)
		var data struct {
			ID int64 `json:"id"`
		}
		_ = json.Unmarshal(resp.Data, &data)
		if data.ID != i {
			t.Fatalf("submission %d got id %d", i, data.ID)
		}
	}

	rec := s.do("GET", "/api/contacts", "")
	resp := decodeAPI(t, rec)
	var list []struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(resp.Data, &list); err != nil {
		t.Fatalf("decode contacts: %v", err)
	}
	if len(list) != 5 || list[0].ID != 1 || list[4].ID != 5 {
		t.Errorf("unexpected contacts: %+v", list)
	}
	if _, err := time.Parse(time.RFC3339, list[0].Timestamp); err != nil {
		t.Errorf("timestamp %q is not ISO 8601: %v", list[0].Timestamp, err)
	}
}

func TestRoutes_ContactSubmit_NotificationFailureInvisible(t *testing.T) {
	var hits atomic.Int32
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer sink.Close()

	failing := newTestServer(t, sink.URL)
	quiet := newTestServer(t, "")
	body := `{"name":"Tester","email":"tester@example.com","message":"Hello"}`

	got := failing.do("POST", "/api/contact", body)
	want := quiet.do("POST", "/api/contact", body)

	if n := hits.Load(); n != 1 {
		t.Errorf("expected the sink to be called once, got %d", n)
	}
	if got.Code != want.Code || got.Body.String() != want.Body.String() {
		t.Errorf("notification failure changed the response: %d %s vs %d %s",
			got.Code, got.Body.String(), want.Code, want.Body.String())
	}
}

func TestRoutes_ContactSubmit_UnreachableSink(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := sink.URL
	sink.Close()

	s := newTestServer(t, url)
	rec := s.do("POST", "/api/contact", `{"name":"Tester","email":"tester@example.com","message":"Hello"}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 despite unreachable sink, got %d", rec.Code)
	}
}

func TestRoutes_ContactsEmpty(t *testing.T) {
	s := newTestServer(t, "")
	rec := s.do("GET", "/api/contacts", "")

	resp := decodeAPI(t, rec)
	if rec.Code != http.StatusOK || !resp.Success || string(resp.Data) != "[]" {
		t.Errorf("expected empty array, got %d %s", rec.Code, resp.Data)
	}
}

func TestRoutes_About(t *testing.T) {
	s := newTestServer(t, "")
	rec := s.do("GET", "/api/about", "")

	resp := decodeAPI(t, rec)
	var about model.CompanyInfo
	_ = json.Unmarshal(resp.Data, &about)
	if rec.Code != http.StatusOK || about.Company != "VPCO" {
		t.Errorf("unexpected about: %d %+v", rec.Code, about)
	}
}

func TestRoutes_WixStatus(t *testing.T) {
	s := newTestServer(t, "")
	rec := s.do("GET", "/api/wix/status", "")

	resp := decodeAPI(t, rec)
	var data map[string]any
	_ = json.Unmarshal(resp.Data, &data)
	if _, ok := data["configured"]; !ok || !resp.Success {
		t.Errorf("expected configured flag, got %s", resp.Data)
	}

	if rec := s.do("GET", "/api/wix/example", ""); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without credentials, got %d", rec.Code)
	}
}

func TestRoutes_UnknownAPI(t *testing.T) {
	s := newTestServer(t, "")
	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/unknown"},
		{"POST", "/api/services"},
		{"DELETE", "/api/contact"},
	} {
		rec := s.do(tc.method, tc.path, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tc.method, tc.path, rec.Code)
			continue
		}
		if resp := decodeAPI(t, rec); resp.Success || resp.Error != "API endpoint not found" {
			t.Errorf("%s %s: unexpected body %+v", tc.method, tc.path, resp)
		}
	}
}

func TestRoutes_StaticPage(t *testing.T) {
	s := newTestServer(t, "")
	for _, path := range []string{"/", "/about-us"} {
		rec := s.do("GET", path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<title>VPCO</title>") {
			t.Errorf("%s: expected index.html", path)
		}
	}
}
