package serve

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yhlin/n8n-consultant/internal/consult"
	"github.com/yhlin/n8n-consultant/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	pipeline, err := consult.NewPipeline(&models.Config{})
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewServer(pipeline, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding %s response: %v", url, err)
	}
	return resp
}

func TestIndustriesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Industries []string `json:"industries"`
	}
	resp := getJSON(t, ts.URL+"/api/industries", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "charset=utf-8") {
		t.Errorf("Content-Type = %q, want charset=utf-8", ct)
	}
	if len(body.Industries) == 0 {
		t.Fatal("industries list is empty")
	}
	found := false
	for _, name := range body.Industries {
		if name == "零售" {
			found = true
		}
	}
	if !found {
		t.Errorf("industries %v missing 零售", body.Industries)
	}
}

func TestDepartmentsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Departments []string `json:"departments"`
		Details     map[string]struct {
			Description       string   `json:"description"`
			PrimaryDimensions []string `json:"primary_dimensions"`
		} `json:"details"`
	}
	getJSON(t, ts.URL+"/api/departments?industry=零售", &body)

	if len(body.Departments) == 0 {
		t.Fatal("departments list is empty")
	}
	first := body.Departments[0]
	info, ok := body.Details[first]
	if !ok {
		t.Fatalf("details missing entry for %q", first)
	}
	if info.Description == "" || len(info.PrimaryDimensions) == 0 {
		t.Errorf("department detail %+v incomplete", info)
	}
}

func TestDepartmentsEndpoint_UnknownIndustry(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Departments []string `json:"departments"`
	}
	resp := getJSON(t, ts.URL+"/api/departments?industry=外太空", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(body.Departments) != 0 {
		t.Errorf("departments = %v, want empty", body.Departments)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	ts := newTestServer(t)

	payload := `{"industry":"零售","department":"行銷","pain_point":"客戶流失率越來越高，想提前知道哪些客戶可能流失"}`
	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rm models.Roadmap
	if err := json.NewDecoder(resp.Body).Decode(&rm); err != nil {
		t.Fatalf("decoding roadmap: %v", err)
	}
	if rm.Industry != "零售" || rm.Department != "行銷" {
		t.Errorf("scope = %s/%s, want 零售/行銷", rm.Industry, rm.Department)
	}
	if rm.SolutionName == "" {
		t.Error("solution_name is empty")
	}
	if len(rm.Workflow.Nodes) == 0 {
		t.Error("workflow has no nodes")
	}
	if len(rm.Steps) == 0 {
		t.Error("steps are empty")
	}
}

func TestAnalyzeEndpoint_MissingPainPoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(`{"industry":"零售"}`))
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Error != "缺少痛點描述" {
		t.Errorf("error = %q, want 缺少痛點描述", body.Error)
	}
}

func TestAnalyzeEndpoint_WrongMethod(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/analyze")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
