package rag

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

func TestListDocuments(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/rag/corpus-1/documents" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "kb-key" {
			t.Fatalf("missing api key")
		}
		w.Write([]byte(`{"success":true,"documents":[{"fileName":"a.pdf","status":"ready"}]}`))
	}))
	defer ts.Close()

	client := NewClient(&config.KnowledgeBaseConfig{BaseURL: ts.URL, APIKey: "kb-key"})
	res, err := client.ListDocuments(context.Background(), "corpus-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !res.Success || len(res.Documents) != 1 || res.Documents[0].FileName != "a.pdf" {
		t.Fatalf("unexpected listing %#v", res)
	}
}

func TestListDocuments_NonArrayDocuments(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"documents":"pending"}`))
	}))
	defer ts.Close()

	client := NewClient(&config.KnowledgeBaseConfig{BaseURL: ts.URL})
	res, err := client.ListDocuments(context.Background(), "c")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Documents != nil {
		t.Fatalf("expected no documents, got %#v", res.Documents)
	}
}

func TestUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer f.Close()
		content, _ := io.ReadAll(f)
		if header.Filename != "notes.txt" || string(content) != "hello" {
			t.Fatalf("unexpected upload %s %q", header.Filename, content)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	client := NewClient(&config.KnowledgeBaseConfig{BaseURL: ts.URL})
	res, err := client.Upload(context.Background(), "c", &entities.DocumentFile{
		Name:        "notes.txt",
		ContentType: "text/plain",
		Content:     strings.NewReader("hello"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success")
	}
}

func TestDelete_ReportedFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE got %s", r.Method)
		}
		var body DeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.FileNames) != 1 || body.FileNames[0] != "X" {
			t.Fatalf("unexpected file names %v", body.FileNames)
		}
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"document locked"}`))
	}))
	defer ts.Close()

	client := NewClient(&config.KnowledgeBaseConfig{BaseURL: ts.URL})
	res, err := client.Delete(context.Background(), "c", []string{"X"})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if res.Success || res.Error != "document locked" {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestDo_UndecodableBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	}))
	defer ts.Close()

	client := NewClient(&config.KnowledgeBaseConfig{BaseURL: ts.URL})
	if _, err := client.ListDocuments(context.Background(), "c"); err == nil {
		t.Fatalf("expected error")
	}
}
