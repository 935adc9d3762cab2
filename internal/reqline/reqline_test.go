package reqline

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want RequestLine
	}{
		{
			name: "verb and root",
			raw:  "GET /",
			want: RequestLine{Verb: "GET", Path: "/"},
		},
		{
			name: "verb only",
			raw:  "PATCH",
			want: RequestLine{Verb: "PATCH", Path: ""},
		},
		{
			name: "verb is uppercased",
			raw:  "get /users",
			want: RequestLine{Verb: "GET", Path: "/users"},
		},
		{
			name: "path with placeholders",
			raw:  "GET /domains/{domainId}/records",
			want: RequestLine{Verb: "GET", Path: "/domains/{domainId}/records"},
		},
		{
			name: "inline query",
			raw:  "GET /?Action=GetUser&Version=2010-05-08",
			want: RequestLine{
				Verb: "GET",
				Path: "/",
				Query: []QueryEntry{
					{Key: "Action", Value: "GetUser", HasValue: true},
					{Key: "Version", Value: "2010-05-08", HasValue: true},
				},
			},
		},
		{
			name: "flag entry keeps no value",
			raw:  "GET /?flag&Action=GetUser",
			want: RequestLine{
				Verb: "GET",
				Path: "/",
				Query: []QueryEntry{
					{Key: "flag"},
					{Key: "Action", Value: "GetUser", HasValue: true},
				},
			},
		},
		{
			name: "duplicate keys stay separate entries",
			raw:  "GET /?tag=a&tag=b",
			want: RequestLine{
				Verb: "GET",
				Path: "/",
				Query: []QueryEntry{
					{Key: "tag", Value: "a", HasValue: true},
					{Key: "tag", Value: "b", HasValue: true},
				},
			},
		},
		{
			name: "placeholders in query stay literal",
			raw:  "GET /records?name={name}&type={type}",
			want: RequestLine{
				Verb: "GET",
				Path: "/records",
				Query: []QueryEntry{
					{Key: "name", Value: "{name}", HasValue: true},
					{Key: "type", Value: "{type}", HasValue: true},
				},
			},
		},
		{
			name: "leading and trailing space",
			raw:  "  DELETE /users/{id}  ",
			want: RequestLine{Verb: "DELETE", Path: "/users/{id}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"path without verb", "/users"},
		{"trailing garbage", "GET /users extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.raw); err == nil {
				t.Errorf("Parse(%q): expected error", tt.raw)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	name, value, err := ParseHeader("Content-Type: application/xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Content-Type" || value != "application/xml" {
		t.Errorf("got %q=%q", name, value)
	}

	name, value, err = ParseHeader("Auth-Token: {Auth-Token}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Auth-Token" || value != "{Auth-Token}" {
		t.Errorf("got %q=%q", name, value)
	}

	// Value keeps internal colons.
	name, value, err = ParseHeader("X-Origin: https://example.com:8443")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "X-Origin" || value != "https://example.com:8443" {
		t.Errorf("got %q=%q", name, value)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	if _, _, err := ParseHeader("NoColonHere"); err == nil {
		t.Error("expected error for header without colon")
	}
	if _, _, err := ParseHeader(": orphaned value"); err == nil {
		t.Error("expected error for header with empty name")
	}
}
