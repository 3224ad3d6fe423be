package errmodel

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTaxonomyConstructors(t *testing.T) {
	e := UnknownAction("send_email")
	if e.Category != CategoryValidation || e.Code != CodeUnknownAction {
		t.Fatalf("unexpected: %#v", e)
	}
	if e.Context["action"] != "send_email" {
		t.Fatalf("context missing action: %#v", e.Context)
	}

	p := PermissionDenied("read_file", "fs:read")
	if p.Category != CategoryPolicy || p.Context["permission"] != "fs:read" {
		t.Fatalf("unexpected: %#v", p)
	}

	v := InvalidArgument("read_file", "path", "path is required")
	if v.Code != CodeInvalidArgument || v.Context["field"] != "path" {
		t.Fatalf("unexpected: %#v", v)
	}
}

func TestFromPreservesCompactErrors(t *testing.T) {
	e := ExecutionFailed("write_file", errors.New("disk full"))
	if got := From(e); got != e {
		t.Fatal("From should return same error instance")
	}
	if len(e.Causes) != 1 || e.Causes[0].Message != "disk full" {
		t.Fatalf("cause not captured: %#v", e.Causes)
	}
	wrapped := From(errors.New("boom"))
	if wrapped.Category != CategorySystem || wrapped.Code != "internal" {
		t.Fatalf("unexpected: %#v", wrapped)
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(Cancelled("slow_action", nil), CodeCancelled) {
		t.Fatal("expected cancelled code")
	}
	if IsCode(errors.New("plain"), CodeCancelled) {
		t.Fatal("plain error should not match")
	}
}

func TestHTTPStatus(t *testing.T) {
	if got := HTTPStatus(UnknownAction("x")); got != 404 {
		t.Fatalf("status=%d want 404", got)
	}
	if got := HTTPStatus(DuplicateAction("x")); got != 409 {
		t.Fatalf("status=%d want 409", got)
	}
	if got := HTTPStatus(PermissionDenied("x", "t")); got != 403 {
		t.Fatalf("status=%d want 403", got)
	}
	if got := HTTPStatus(ExecutionFailed("x", nil)); got != 502 {
		t.Fatalf("status=%d want 502", got)
	}
}

func TestWriteHTTP_StatusAndEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/turn", nil)
	WriteHTTP(rr, req, InvalidArgument("read_file", "path", "path is required"))
	if rr.Code != 400 {
		t.Fatalf("status=%d want 400", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "\"category\":\"validation\"") {
		t.Fatalf("body missing category: %s", body)
	}
	if !strings.Contains(body, "\"code\":\"invalid_argument\"") {
		t.Fatalf("body missing code: %s", body)
	}
}
