package consult

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/yhlin/n8n-consultant/models"
)

func newTestApp() *cli.App {
	return &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.BoolFlag{Name: "quiet"},
		},
		Commands: []*cli.Command{
			{
				Name:   "consult",
				Action: ConsultAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "industry"},
					&cli.StringFlag{Name: "department"},
					&cli.StringFlag{Name: "pain"},
					&cli.StringFlag{Name: "format", Value: "text"},
					&cli.BoolFlag{Name: "community"},
					&cli.BoolFlag{Name: "export"},
					&cli.BoolFlag{Name: "no-save"},
				},
			},
		},
	}
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns what
// it printed.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	runErr := fn()
	os.Stdout = orig
	w.Close()

	out := make([]byte, 0, 4096)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			break
		}
	}
	r.Close()
	return string(out), runErr
}

func TestConsultAction_EmptyIndustryNonInteractive(t *testing.T) {
	app := newTestApp()
	configPath := filepath.Join(t.TempDir(), "no-config.yaml")

	out, err := captureStdout(t, func() error {
		return app.Run([]string{"n8n-consultant",
			"--config", configPath, "--quiet",
			"consult",
			"--pain", "報表產出太慢，重複性工作太多需要自動化",
			"--format", "json",
			"--no-save",
		})
	})
	if err != nil {
		t.Fatalf("consult with empty industry failed: %v", err)
	}

	var rm models.Roadmap
	if err := json.Unmarshal([]byte(out), &rm); err != nil {
		t.Fatalf("output is not a roadmap JSON: %v", err)
	}
	if rm.Industry != "" {
		t.Errorf("industry = %q, want empty", rm.Industry)
	}
	if rm.Department != "全部門" {
		t.Errorf("department = %q, want 全部門", rm.Department)
	}
	if len(rm.Signals.Sources) == 0 || len(rm.Signals.Actions) == 0 {
		t.Errorf("fallback signals missing: %+v", rm.Signals)
	}
	if len(rm.Workflow.Nodes) == 0 {
		t.Error("workflow has no nodes")
	}
}

func TestConsultAction_UnknownFormat(t *testing.T) {
	app := newTestApp()
	configPath := filepath.Join(t.TempDir(), "no-config.yaml")

	_, err := captureStdout(t, func() error {
		return app.Run([]string{"n8n-consultant",
			"--config", configPath, "--quiet",
			"consult",
			"--pain", "客服回覆太慢需要自動回覆",
			"--format", "xml",
			"--no-save",
		})
	})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}
