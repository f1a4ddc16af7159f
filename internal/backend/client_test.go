package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostCode_SentinelMapping(t *testing.T) {
	cases := []struct {
		name string
		body string
		kind Kind
		ok   bool
	}{
		{"success", "1", 0, true},
		{"failure", "0", KindUnknown, false},
		{"not found", "404", KindNotFound, false},
		{"server error", "500", KindServerError, false},
		{"quoted success", `"1"`, 0, true},
		{"garbage", `{"weird":true}`, KindUnknown, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, 0)
			err := c.PostCode(context.Background(), "test.op", "/mutate", nil, nil)
			if tc.ok {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if KindOf(err) != tc.kind {
				t.Fatalf("expected kind %v, got %v", tc.kind, KindOf(err))
			}
		})
	}
}

func TestGetJSON_EnvelopeUnwrap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":7,"name":"Micky"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	var out []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := c.GetJSON(context.Background(), "test.list", "/things", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != 7 || out[0].Name != "Micky" {
		t.Fatalf("unexpected decode result: %+v", out)
	}
}

func TestGetJSON_BareResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":3}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	var out struct {
		ID int `json:"id"`
	}
	if err := c.GetJSON(context.Background(), "test.get", "/thing", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 3 {
		t.Fatalf("expected id 3, got %d", out.ID)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	var out any
	if err := c.GetJSON(context.Background(), "test", "/missing", &out); !IsNotFound(err) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
	if err := c.GetJSON(context.Background(), "test", "/broken", &out); KindOf(err) != KindServerError {
		t.Fatalf("expected server-error kind, got %v", err)
	}
}

func TestKindOf_ForeignError(t *testing.T) {
	if KindOf(context.Canceled) != KindUnknown {
		t.Fatal("foreign errors must map to KindUnknown")
	}
}
