package clubhouse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_GetCurrentMemberInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/member" {
			t.Errorf("path = %s, want /api/v3/member", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": "12345678-9012-3456-7890-123456789012",
			"name": "Jo Doe",
			"mention_name": "jo",
			"workspace2": {"url_slug": "acme", "estimate_scale": [0, 1, 2, 4, 8]}
		}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	info, err := client.GetCurrentMemberInfo(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentMemberInfo() error = %v", err)
	}
	if info.MentionName != "jo" {
		t.Errorf("MentionName = %s, want jo", info.MentionName)
	}
	if info.Workspace.URLSlug != "acme" {
		t.Errorf("Workspace.URLSlug = %s, want acme", info.Workspace.URLSlug)
	}
}

func TestClient_GetMember(t *testing.T) {
	const memberID = "12345678-9012-3456-7890-123456789012"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/members/"+memberID {
			t.Errorf("path = %s, want /api/v3/members/%s", r.URL.Path, memberID)
		}
		w.Write([]byte(`{
			"id": "` + memberID + `",
			"role": "admin",
			"profile": {"name": "Jo Doe", "mention_name": "jo", "email_address": "jo@example.com"}
		}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	member, err := client.GetMember(context.Background(), memberID)
	if err != nil {
		t.Fatalf("GetMember() error = %v", err)
	}
	if member.Role != "admin" {
		t.Errorf("Role = %s, want admin", member.Role)
	}
	if member.Profile.EmailAddress != "jo@example.com" {
		t.Errorf("Profile.EmailAddress = %s, want jo@example.com", member.Profile.EmailAddress)
	}
}

func TestClient_ListMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/members" {
			t.Errorf("path = %s, want /api/v3/members", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": "aaaa", "role": "owner", "profile": {"mention_name": "ana"}},
			{"id": "bbbb", "role": "member", "profile": {"mention_name": "ben"}}
		]`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	members, err := client.ListMembers(context.Background())
	if err != nil {
		t.Fatalf("ListMembers() error = %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("len(members) = %d, want 2", len(members))
	}
	if members[0].Profile.MentionName != "ana" {
		t.Errorf("members[0] mention = %s, want ana", members[0].Profile.MentionName)
	}
}
