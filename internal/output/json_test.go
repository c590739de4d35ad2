package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{Out: &buf, Now: testNow}

	if err := w.Write(samplePRs()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if len(got.PullRequests) != 2 {
		t.Fatalf("got %d rows, want 2", len(got.PullRequests))
	}
	if got.PullRequests[0].Number != 7 || got.PullRequests[1].Number != 8 {
		t.Errorf("rows out of order: %+v", got.PullRequests)
	}
	if got.Summary.TotalPRs != 2 || got.Summary.TotalReviews != 2 || got.Summary.TotalComments != 3 {
		t.Errorf("summary = %+v", got.Summary)
	}
}

func TestJSONWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{Out: &buf, Now: testNow}
	if err := w.Write(nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rows, ok := got["pullRequests"].([]any); !ok || len(rows) != 0 {
		t.Errorf("pullRequests = %v, want empty array", got["pullRequests"])
	}
}
