package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const postingPage = `<html>
<head><title>Job</title></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
	<h1>Senior Backend Engineer</h1>
	<p>Fully remote role building distributed systems in Go.</p>

	<p>Requirements: 5+ years of experience.</p>
</div>
<footer>Copyright</footer>
</body>
</html>`

func TestExtractPostingText(t *testing.T) {
	text, err := ExtractPostingText(postingPage)
	if err != nil {
		t.Fatalf("ExtractPostingText() error = %v", err)
	}

	if !strings.Contains(text, "Senior Backend Engineer") {
		t.Errorf("text missing heading: %q", text)
	}
	if !strings.Contains(text, "Fully remote role") {
		t.Errorf("text missing body: %q", text)
	}
	if strings.Contains(text, "Home | Jobs") || strings.Contains(text, "Copyright") {
		t.Errorf("nav/footer noise not removed: %q", text)
	}
}

func TestExtractPostingText_BodyFallback(t *testing.T) {
	html := `<html><body><p>Just a bare page.</p></body></html>`
	text, err := ExtractPostingText(html)
	if err != nil {
		t.Fatalf("ExtractPostingText() error = %v", err)
	}
	if text != "Just a bare page." {
		t.Errorf("text = %q", text)
	}
}

func TestPosting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "ResumeForge") {
			t.Errorf("User-Agent = %q", ua)
		}
		_, _ = w.Write([]byte(postingPage))
	}))
	defer srv.Close()

	text, err := Posting(context.Background(), srv.URL, false)
	if err != nil {
		t.Fatalf("Posting() error = %v", err)
	}
	if !strings.Contains(text, "distributed systems in Go") {
		t.Errorf("text = %q", text)
	}
}

func TestPosting_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	var fetchErr *Error
	_, err := Posting(context.Background(), srv.URL, false)
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Posting() error = %T, want *Error", err)
	}
	if !strings.Contains(fetchErr.Message, "404") {
		t.Errorf("Message = %q", fetchErr.Message)
	}
}

func TestPosting_InvalidURL(t *testing.T) {
	var fetchErr *Error
	if _, err := Posting(context.Background(), "not a url", false); !errors.As(err, &fetchErr) {
		t.Fatalf("Posting() error = %T, want *Error", err)
	}
}
