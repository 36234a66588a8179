package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDoSurfacesJSONMessageOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Company name is required"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListCompanies(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Company name is required") {
		t.Errorf("error %q should carry the server message", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
}

func TestDoSurfacesRawBodyOnNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListCompanies(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("error %q should name the status code", err)
	}
	if !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("error %q should carry the body text", err)
	}
}

func TestDoBareStatusOnEmptyErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListCompanies(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HTTP 502") {
		t.Errorf("error %q should fall back to the bare status", err)
	}
}

func TestDoTreatsSuccessFalseAsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"error":"generation failed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GenerateGuidelines(context.Background(), GenerateGuidelinesRequest{CompanyID: 1})
	if err == nil {
		t.Fatal("expected error for success=false body")
	}
	if !strings.Contains(err.Error(), "generation failed") {
		t.Errorf("error %q should carry the error field", err)
	}
}

func TestDoTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.ListCompanies(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Cause == nil {
		t.Error("transport failure should keep its cause")
	}
}

func TestGetGuidelinesNullContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	content, err := c.GetGuidelines(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetGuidelines: %v", err)
	}
	if content != "" {
		t.Errorf("null content should come back empty, got %q", content)
	}
}

func TestGenerateGuidelinesAcceptsBothResponseKeys(t *testing.T) {
	for _, body := range []string{
		`{"success":true,"content":"# Brand"}`,
		`{"success":true,"guidelines":"# Brand"}`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		}))
		c := NewClient(srv.URL)
		content, err := c.GenerateGuidelines(context.Background(), GenerateGuidelinesRequest{CompanyID: 1})
		srv.Close()
		if err != nil {
			t.Fatalf("GenerateGuidelines(%s): %v", body, err)
		}
		if content != "# Brand" {
			t.Errorf("GenerateGuidelines(%s) = %q, want %q", body, content, "# Brand")
		}
	}
}

func TestCreateCompanySendsCamelCasePayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":3,"name":"Acme"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	company, err := c.CreateCompany(context.Background(), CreateCompanyRequest{
		BusinessName:     "Acme",
		Industry:         "Technology",
		BrandPersonality: []string{"Bold"},
	})
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}
	if company.ID != 3 {
		t.Errorf("ID = %d, want 3", company.ID)
	}
	if got["businessName"] != "Acme" {
		t.Errorf("payload businessName = %v", got["businessName"])
	}
	if _, ok := got["brandPersonality"]; !ok {
		t.Error("payload should carry brandPersonality")
	}
}

func TestUploadImagesMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if r.FormValue("companyId") != "9" {
			t.Errorf("companyId = %q, want 9", r.FormValue("companyId"))
		}
		if n := len(r.MultipartForm.File["images"]); n != 2 {
			t.Errorf("got %d files under images, want 2", n)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"urls":["/u/a.jpg","/u/b.jpg"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	urls, err := c.UploadImages(context.Background(), 9, []File{
		{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("aa")},
		{Name: "b.jpg", ContentType: "image/jpeg", Data: []byte("bb")},
	})
	if err != nil {
		t.Fatalf("UploadImages: %v", err)
	}
	if len(urls) != 2 || urls[0] != "/u/a.jpg" {
		t.Errorf("urls = %v", urls)
	}
}
