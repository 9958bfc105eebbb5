package http

import (
	"net/http"
	"strings"
	"testing"
)

func pioneerCheckBody(phone string, age int, income int64, employment string) string {
	return `{"user_data":{"phone":"` + phone + `","age":` + itoa(age) + `,"monthly_income":` + itoa64(income) + `,"employment_type":"` + employment + `","has_property":false}}`
}

func TestCheckPioneer_Passed(t *testing.T) {
	e, _ := testServer(t)
	rec := doJSON(t, e, http.MethodPost, "/api/antifraud/pioneer/check",
		pioneerCheckBody(unknownPhone, 30, 5_000_000, "full_time"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Decision string   `json:"decision"`
		Reasons  []string `json:"reasons"`
	}
	decodeBody(t, rec, &body)
	if body.Decision != "passed" {
		t.Fatalf("decision = %q (reasons: %v), want passed", body.Decision, body.Reasons)
	}
	if body.Reasons == nil || len(body.Reasons) != 0 {
		t.Fatalf("reasons = %#v, want present and empty", body.Reasons)
	}
}

func TestCheckPioneer_RejectedIsStill200(t *testing.T) {
	e, _ := testServer(t)
	rec := doJSON(t, e, http.MethodPost, "/api/antifraud/pioneer/check",
		pioneerCheckBody(unknownPhone, 16, 5_000_000, "full_time"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Decision string   `json:"decision"`
		Reasons  []string `json:"reasons"`
	}
	decodeBody(t, rec, &body)
	if body.Decision != "rejected" || len(body.Reasons) == 0 {
		t.Fatalf("body = %+v, want rejected with reasons", body)
	}
}

func TestCheckPioneer_ValidationFailure(t *testing.T) {
	e, _ := testServer(t)
	// employment_type outside the allowed set
	rec := doJSON(t, e, http.MethodPost, "/api/antifraud/pioneer/check",
		pioneerCheckBody(unknownPhone, 30, 5_000_000, "self_employed"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body ErrorResponse
	decodeBody(t, rec, &body)
	found := false
	for _, d := range body.Details {
		if d.Field == "EmploymentType" && strings.Contains(d.Message, "must be one of") {
			found = true
		}
	}
	if !found {
		t.Fatalf("details = %+v, want an EmploymentType oneof error", body.Details)
	}
}

func TestCheckRepeater_Passed(t *testing.T) {
	e, _ := testServer(t)
	body := `{"phone":"` + knownPhone + `","current_profile":{"age":35,"monthly_income":6000000,"employment_type":"full_time","has_property":true}}`
	rec := doJSON(t, e, http.MethodPost, "/api/antifraud/repeater/check", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Decision string `json:"decision"`
	}
	decodeBody(t, rec, &out)
	if out.Decision != "passed" {
		t.Fatalf("decision = %q, want passed", out.Decision)
	}
}

func TestCheckRepeater_UnknownPhoneIs404(t *testing.T) {
	e, _ := testServer(t)
	body := `{"phone":"` + unknownPhone + `","current_profile":{"age":35,"monthly_income":6000000,"employment_type":"full_time","has_property":true}}`
	rec := doJSON(t, e, http.MethodPost, "/api/antifraud/repeater/check", body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var out ErrorResponse
	decodeBody(t, rec, &out)
	if !strings.Contains(out.Error, "pioneer flow") {
		t.Fatalf("error = %q, want a hint towards the pioneer flow", out.Error)
	}
}

func TestCheckRepeater_MissingProfile(t *testing.T) {
	e, _ := testServer(t)
	rec := doJSON(t, e, http.MethodPost, "/api/antifraud/repeater/check", `{"phone":"`+knownPhone+`"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
