package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const stubCompletion = `{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`

func newTestClient(upstreamURL string) *Client {
	return NewClient(upstreamURL, "test-key", DefaultModel, 5*time.Second)
}

func TestCompleteForwardsFixedParameters(t *testing.T) {
	var gotAuth string
	var gotPayload completionRequest

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("failed to decode relayed payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(stubCompletion))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)

	body, err := client.Complete(context.Background(), []Turn{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if string(body) != stubCompletion {
		t.Errorf("body = %s, want verbatim upstream body", body)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-key")
	}
	if gotPayload.Model != DefaultModel {
		t.Errorf("model = %q, want %q", gotPayload.Model, DefaultModel)
	}
	if gotPayload.Temperature != Temperature {
		t.Errorf("temperature = %v, want %v", gotPayload.Temperature, Temperature)
	}
	if gotPayload.MaxTokens != MaxTokens {
		t.Errorf("max_tokens = %d, want %d", gotPayload.MaxTokens, MaxTokens)
	}
	if len(gotPayload.Messages) != 1 || gotPayload.Messages[0].Content != "hi" || gotPayload.Messages[0].Role != "user" {
		t.Errorf("messages = %+v, want single user turn %q", gotPayload.Messages, "hi")
	}
}

// Upstream status codes are not inspected: any JSON body passes through unmodified.
func TestCompletePassesThroughNon200Bodies(t *testing.T) {
	upstreamBody := `{"error":{"message":"invalid api key","type":"invalid_request_error"}}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(upstreamBody))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)

	body, err := client.Complete(context.Background(), []Turn{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("Complete() error = %v, want passthrough", err)
	}
	if string(body) != upstreamBody {
		t.Errorf("body = %s, want %s", body, upstreamBody)
	}
}

func TestCompleteRejectsNonJSONBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)

	if _, err := client.Complete(context.Background(), []Turn{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("Complete() succeeded on a non-JSON upstream body, want error")
	}
}

func TestCompleteNetworkError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client := newTestClient(upstream.URL)

	if _, err := client.Complete(context.Background(), []Turn{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("Complete() succeeded against a closed upstream, want error")
	}
}

func TestParseCompletion(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "recognized shape",
			body: stubCompletion,
			want: "hello",
		},
		{
			name:    "no choices",
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "empty choices",
			body:    `{"choices":[]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `hello`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			body:    `{"choices":"nope"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completion, err := ParseCompletion([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCompletion() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCompletion() error = %v", err)
			}
			if got := completion.Choices[0].Message.Content; got != tt.want {
				t.Errorf("first choice content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstChoiceContent(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "recognized", body: stubCompletion, want: "hello"},
		{name: "unrecognized shape", body: `{}`, want: NoResponseFallback},
		{name: "empty content", body: `{"choices":[{"message":{"role":"assistant","content":""}}]}`, want: NoResponseFallback},
		{name: "garbage", body: `<html>`, want: NoResponseFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstChoiceContent([]byte(tt.body)); got != tt.want {
				t.Errorf("FirstChoiceContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
