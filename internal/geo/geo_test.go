package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func lookupServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/json/", time.Second)
}

func TestClientLocate(t *testing.T) {
	var gotPath, gotFields string
	c := lookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		w.Write([]byte(`{"status":"success","regionName":"Bavaria","city":"Munich"}`))
	})

	region, err := c.Locate(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("Locate() failed: %v", err)
	}
	if region != "Bavaria Munich" {
		t.Errorf("Expected %q, got %q", "Bavaria Munich", region)
	}
	if gotPath != "/json/203.0.113.7" {
		t.Errorf("Unexpected request path %q", gotPath)
	}
	if !strings.Contains(gotFields, "regionName") || !strings.Contains(gotFields, "city") {
		t.Errorf("Expected regionName and city fields, got %q", gotFields)
	}
}

func TestClientLocateFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"provider fail", http.StatusOK, `{"status":"fail","message":"private range"}`},
		{"empty answer", http.StatusOK, `{"status":"success","regionName":"","city":""}`},
		{"bad json", http.StatusOK, `not json`},
		{"server error", http.StatusInternalServerError, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := lookupServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			if _, err := c.Locate(context.Background(), "10.0.0.1"); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestClientLocatePartialAnswer(t *testing.T) {
	c := lookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","regionName":"","city":"Lyon"}`))
	})

	region, err := c.Locate(context.Background(), "198.51.100.2")
	if err != nil {
		t.Fatalf("Locate() failed: %v", err)
	}
	if region != "Lyon" {
		t.Errorf("Expected Lyon, got %q", region)
	}
}

func TestRegionOrUnknownTimeout(t *testing.T) {
	c := lookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	start := time.Now()
	region := RegionOrUnknown(context.Background(), c, "203.0.113.7", 50*time.Millisecond, nil)
	if region != Unknown {
		t.Errorf("Expected %q on timeout, got %q", Unknown, region)
	}
	if time.Since(start) > time.Second {
		t.Error("Timeout was not honoured")
	}
}

func TestRegionOrUnknown(t *testing.T) {
	static := Static{"203.0.113.7": "Bavaria Munich"}

	tests := []struct {
		name string
		loc  Locator
		ip   string
		want string
	}{
		{"known", static, "203.0.113.7", "Bavaria Munich"},
		{"missing", static, "198.51.100.1", Unknown},
		{"disabled", Disabled{}, "203.0.113.7", Unknown},
		{"nil locator", nil, "203.0.113.7", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegionOrUnknown(context.Background(), tt.loc, tt.ip, time.Second, nil); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStaticNoAnswer(t *testing.T) {
	_, err := Static{}.Locate(context.Background(), "1.2.3.4")
	if !errors.Is(err, ErrNoAnswer) {
		t.Errorf("Expected ErrNoAnswer, got %v", err)
	}
}
