package scholarseeker

import (
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go/option"
)

// scriptedTransport replays one canned outcome per request, repeating the
// last step once the script runs out. It lets the real client stack run
// without a network.
type scriptedTransport struct {
	calls int
	steps []func(*http.Request) (*http.Response, error)
}

func (st *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	i := st.calls
	if i >= len(st.steps) {
		i = len(st.steps) - 1
	}
	st.calls++
	return st.steps[i](req)
}

func jsonStep(status int, body string) func(*http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		}, nil
	}
}

func errorStep(err error) func(*http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		return nil, err
	}
}

func sseStep(body io.Reader) func(*http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": {"text/event-stream"}},
			Body:       io.NopCloser(body),
			Request:    req,
		}, nil
	}
}

// failingReader yields its data and then fails, simulating a transport
// dropped mid-stream.
type failingReader struct {
	data *strings.Reader
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	n, err := r.data.Read(p)
	if err == io.EOF {
		return n, r.err
	}
	return n, err
}

func newTestClient(rt http.RoundTripper) *LLM {
	config := &LLMConfig{
		APIKey:  "test-key",
		BaseURL: "https://completion.test",
		Model:   "test-model",
	}
	return config.NewLLMClient(option.WithHTTPClient(&http.Client{Transport: rt}))
}

const completionBody = `{"id":"cmpl-1","object":"chat.completion","created":1,"model":"test-model","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"See [1]."}}],"citations":["http://a.com"]}`
