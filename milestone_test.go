package clubhouse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestClient_CreateMilestone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/v3/milestones" {
			t.Errorf("path = %s, want /api/v3/milestones", r.URL.Path)
		}
		if r.URL.RawQuery != "token=test-token" {
			t.Errorf("query = %s, want token=test-token", r.URL.RawQuery)
		}

		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"name":"TEST"}` {
			t.Errorf("body = %s, want {\"name\":\"TEST\"}", body)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"id": 42,
			"entity_type": "milestone",
			"name": "TEST",
			"state": "to do",
			"created_at": "2020-03-15T10:00:00Z",
			"updated_at": "2020-03-15T10:00:00Z",
			"categories": []
		}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	milestone, err := client.CreateMilestone(context.Background(), &CreateMilestoneParams{Name: "TEST"})
	if err != nil {
		t.Fatalf("CreateMilestone() error = %v", err)
	}
	if milestone.ID != 42 {
		t.Errorf("ID = %d, want 42", milestone.ID)
	}
	if milestone.Name != "TEST" {
		t.Errorf("Name = %s, want TEST", milestone.Name)
	}
	if milestone.State != StateToDo {
		t.Errorf("State = %s, want %s", milestone.State, StateToDo)
	}
}

func TestClient_GetMilestone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/v3/milestones/123" {
			t.Errorf("path = %s, want /api/v3/milestones/123", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": 123,
			"name": "Launch",
			"state": "in progress",
			"started": true,
			"started_at": "2020-04-01T09:30:00Z",
			"stats": {"average_cycle_time": 3600, "average_lead_time": 7200}
		}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	milestone, err := client.GetMilestone(context.Background(), 123)
	if err != nil {
		t.Fatalf("GetMilestone() error = %v", err)
	}
	if milestone.ID != 123 {
		t.Errorf("ID = %d, want 123", milestone.ID)
	}
	if !milestone.Started {
		t.Error("Started = false, want true")
	}
	if milestone.StartedAt == nil {
		t.Fatal("StartedAt is nil")
	}
	if milestone.Stats == nil || milestone.Stats.AverageCycleTime != 3600 {
		t.Errorf("Stats = %+v, want average_cycle_time 3600", milestone.Stats)
	}
}

func TestClient_UpdateMilestone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/api/v3/milestones/123" {
			t.Errorf("path = %s, want /api/v3/milestones/123", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"name":"Renamed","state":"done"}` {
			t.Errorf("body = %s, want name and state only", body)
		}

		w.Write([]byte(`{"id": 123, "name": "Renamed", "state": "done", "completed": true}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	milestone, err := client.UpdateMilestone(context.Background(), 123, &UpdateMilestoneParams{
		Name:  "Renamed",
		State: StateDone,
	})
	if err != nil {
		t.Fatalf("UpdateMilestone() error = %v", err)
	}
	if milestone.Name != "Renamed" {
		t.Errorf("Name = %s, want Renamed", milestone.Name)
	}
	if !milestone.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestClient_DeleteMilestone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/api/v3/milestones/123" {
			t.Errorf("path = %s, want /api/v3/milestones/123", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	if err := client.DeleteMilestone(context.Background(), 123); err != nil {
		t.Fatalf("DeleteMilestone() error = %v", err)
	}
}

func TestClient_DeleteMilestone_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"milestone not found"}`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	err := client.DeleteMilestone(context.Background(), 999)
	if !IsNotFound(err) {
		t.Errorf("DeleteMilestone() error = %v, want 404 APIError", err)
	}
}

func TestClient_ListMilestones(t *testing.T) {
	var calls int32
	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		if r.URL.Query().Get("page_token") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/api/v3/milestones?page_token=next>; rel="next"`, server.URL))
			w.Write([]byte(`[{"id": 1, "name": "First"}, {"id": 2, "name": "Second"}]`))
			return
		}
		w.Write([]byte(`[{"id": 3, "name": "Third"}]`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	milestones, err := client.ListMilestones(context.Background())
	if err != nil {
		t.Fatalf("ListMilestones() error = %v", err)
	}

	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("calls = %d, want exactly 2", calls)
	}
	if len(milestones) != 3 {
		t.Fatalf("len(milestones) = %d, want 3", len(milestones))
	}
	if milestones[0].Name != "First" || milestones[2].Name != "Third" {
		t.Errorf("milestones out of order: %v", milestones)
	}
}

func TestClient_ListMilestoneEpics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/milestones/42/epics" {
			t.Errorf("path = %s, want /api/v3/milestones/42/epics", r.URL.Path)
		}
		w.Write([]byte(`[{"id": 7, "name": "Epic One"}, {"id": 8, "name": "Epic Two"}]`))
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	epics, err := client.ListMilestoneEpics(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListMilestoneEpics() error = %v", err)
	}
	if len(epics) != 2 {
		t.Fatalf("len(epics) = %d, want 2", len(epics))
	}
	if epics[0].Name != "Epic One" {
		t.Errorf("epics[0].Name = %s, want Epic One", epics[0].Name)
	}
}
