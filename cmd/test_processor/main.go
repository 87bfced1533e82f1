// Command test_processor runs one editing session end to end against a mock
// ai-service and a throwaway file store, writing every preview and the
// exported PDF to the output directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xkiven/ResumeBuilder/internal/adapter/repository"
	"github.com/xkiven/ResumeBuilder/internal/editor"
	"github.com/xkiven/ResumeBuilder/internal/render"
	"github.com/xkiven/ResumeBuilder/internal/usecase"
	"github.com/xkiven/ResumeBuilder/pkg/ai"
	"github.com/xkiven/ResumeBuilder/pkg/gitrepo"
	"github.com/xkiven/ResumeBuilder/pkg/infrastructure"
)

func mockChat(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var req map[string]interface{}
	_ = json.Unmarshal(body, &req)
	input, _ := req["input"].(string)
	if input == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var out interface{}
	if strings.Contains(input, "REPOSITORY:") {
		out = map[string]interface{}{
			"name":        "ResumeBuilder",
			"description": "Resume editor with live preview and PDF export",
			"tech_stack":  []string{"Go", "Fiber", "PostgreSQL", "N/A"},
			"highlights":  []string{"Rendered three layouts from one document tree", "Cached previews by content hash"},
		}
	} else {
		out = map[string]interface{}{
			"basic_info": []map[string]interface{}{{"name": "Test User", "email": "t@example.com", "phone": "未提供", "title": "Engineer"}},
			"education":  []map[string]interface{}{{"school": "State University", "major": "Computer Science", "degree": "BSc", "start_date": "2016-09", "end_date": "2020-06"}},
			"experience": []map[string]interface{}{{
				"company": "Acme", "position": "Backend Engineer", "start_date": "2020-07", "end_date": "",
				"description":  "Go: built the billing pipeline\nOwned on-call for payments",
				"achievements": "Cut p99 latency by 40%\nLed the Postgres migration",
			}},
			"skills": []string{"Go", "PostgreSQL", "Kubernetes", "暂无"},
		}
	}
	b, _ := json.Marshal(out)
	resp, _ := json.Marshal(map[string]interface{}{"agent": "mock", "output": "```json\n" + string(b) + "\n```"})
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(resp)
}

func startMockAI() (*http.Server, string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, "", err
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat", mockChat)
	srv := &http.Server{Handler: mux}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("mock ai server failed", "error", err)
		}
	}()
	return srv, "http://" + ln.Addr().String(), nil
}

// offlineFetcher skips README and metadata lookups.
type offlineFetcher struct{}

func (offlineFetcher) Fetch(ctx context.Context, info gitrepo.Info) gitrepo.Snapshot {
	return gitrepo.Snapshot{Info: info}
}

// stubPDF stands in for Chrome when -chrome is not set.
type stubPDF struct{}

func (stubPDF) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return []byte(fmt.Sprintf("%%PDF-1.4\n%% stub for %d bytes of html\n%%%%EOF\n", len(html))), nil
}

func run(ctx context.Context, outDir string, useChrome bool) error {
	srv, url, err := startMockAI()
	if err != nil {
		return err
	}
	defer srv.Shutdown(context.Background())

	store, err := repository.NewFileResumeRepo(filepath.Join(outDir, "store"))
	if err != nil {
		return err
	}
	svc := usecase.NewResumeService(store, ai.NewClient(url, "en"), offlineFetcher{})

	var pdf usecase.Renderer = stubPDF{}
	if useChrome {
		pdf = infrastructure.NewChromedpRenderer(os.Getenv("CHROME_PATH"))
	}
	processor := usecase.NewProcessor(svc, svc, pdf, repository.NewJobsRepo(nil), render.NewRenderer(render.WithSkillExpansion()), outDir)

	s := editor.NewSession("smoke-user")
	if err := processor.GenerateFromText(ctx, s, "Test User, backend engineer at Acme since 2020."); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if _, err := processor.AddRepositoryProject(ctx, s, "https://github.com/xkiven/ResumeBuilder"); err != nil {
		return fmt.Errorf("repository: %w", err)
	}
	if err := processor.Save(ctx, s); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	reloaded := editor.NewSession("smoke-user")
	if err := processor.Load(ctx, reloaded); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	for _, v := range render.Variants() {
		html, err := processor.Preview(reloaded, v)
		if err != nil {
			return fmt.Errorf("preview %s: %w", v, err)
		}
		p := filepath.Join(outDir, "preview_"+v.String()+".html")
		if err := os.WriteFile(p, html, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", p)
	}

	exp, err := processor.ExportPDF(ctx, reloaded, render.Classic)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("exported %s (%d bytes): %v\n", exp.FileName, len(exp.PDF), exp.Job.Metadata["generated_pdf"])
	return nil
}

func main() {
	outDir := flag.String("out", "resume-data", "output directory")
	useChrome := flag.Bool("chrome", false, "render the PDF with headless Chrome")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	if err := run(ctx, *outDir, *useChrome); err != nil {
		fmt.Printf("smoke run failed: %v\n", err)
		os.Exit(1)
	}
}
