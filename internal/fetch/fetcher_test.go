package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/courtside/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetCSV = `Video ID,Title,Channel Name,Channel ID,Published Date,Thumbnail URL,Description,View Count,Duration,Like Count,Comment Count
abc123,"LeBron, Luka and the West",Hoops Daily,UC1,2025-11-18T10:00:00Z,https://img/1.jpg,"Multi
line description",120000,1:02:03,3400,210

,No id here,Hoops Daily,UC1,2025-11-18T10:00:00Z,,,,,,
def456,Celtics film study,Thinking Basketball,UC2,not a date,,,,24:30,,
`

type fakeSource struct {
	records []model.Record
	err     error
	calls   int
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Records(ctx context.Context) ([]model.Record, error) {
	f.calls++
	return f.records, f.err
}

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sheetCSV))
	require.NoError(t, err)
	require.Len(t, records, 2, "row without Video ID and blank line are dropped")

	first := records[0]
	assert.Equal(t, "abc123", first.ID)
	assert.Equal(t, "LeBron, Luka and the West", first.Title)
	assert.Equal(t, "Multi\nline description", first.Description)
	assert.Equal(t, int64(120000), first.Views())
	assert.Equal(t, "1:02:03", first.Duration)
	assert.True(t, first.HasPublished())

	second := records[1]
	assert.Equal(t, "0", second.ViewCount, "missing counters default to 0")
	assert.Equal(t, "0", second.LikeCount)
	assert.False(t, second.HasPublished())
}

func TestParseCSVColumnOrderAndBOM(t *testing.T) {
	body := "\ufeffTitle,Video ID,Extra\nHello,x1,ignored\n"
	records, err := ParseCSV(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "x1", records[0].ID)
	assert.Equal(t, "Hello", records[0].Title)
}

func TestParseCSVEmpty(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	records, err = ParseCSV(strings.NewReader("Video ID,Title\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseCSVMalformed(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Video ID,Title\n\"unterminated,x\n"))
	assert.NoError(t, err, "lazy quotes tolerate a stray quote")

	_, err = ParseCSV(strings.NewReader("Video ID,Title\nx,\"a\"b\"\n"))
	assert.NoError(t, err)
}

func TestSheetSource(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sheetCSV))
	}))
	defer server.Close()

	src := NewSheetSource(server.URL, 5*time.Second)
	records, err := src.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Contains(t, gotUA, "Courtside")
}

func TestSheetSourceHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	records, err := NewSheetSource(server.URL, 5*time.Second).Records(context.Background())
	assert.Nil(t, records)

	var ie *IngestionError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "sheet", ie.Source)
	assert.Contains(t, err.Error(), "404")
}

func TestSheetSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSheetSource("http://127.0.0.1:1", time.Second).Records(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.csv")
	require.NoError(t, os.WriteFile(path, []byte(sheetCSV), 0644))

	records, err := (&FileSource{Path: path}).Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = (&FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")}).Records(context.Background())
	var ie *IngestionError
	assert.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("x", nil))
	assert.Same(t, ErrThrottled, Wrap("x", ErrThrottled))

	inner := &IngestionError{Source: "inner", Err: errors.New("boom")}
	assert.Same(t, inner, Wrap("outer", inner).(*IngestionError))

	var ie *IngestionError
	require.ErrorAs(t, Wrap("x", errors.New("boom")), &ie)
	assert.Equal(t, "x: boom", ie.Error())
}

func TestThrottled(t *testing.T) {
	inner := &fakeSource{records: []model.Record{{ID: "a"}}}
	src := NewThrottled(inner, time.Hour)

	records, err := src.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = src.Records(context.Background())
	assert.ErrorIs(t, err, ErrThrottled)
	assert.Equal(t, 1, inner.calls)
}

func TestThrottledDisabled(t *testing.T) {
	inner := &fakeSource{}
	src := NewThrottled(inner, 0)
	for i := 0; i < 3; i++ {
		_, err := src.Records(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.calls)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(SourceConfig{Kind: "http", URL: "http://x", Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &SheetSource{}, src)

	src, err = NewSource(SourceConfig{Kind: "file", Path: "/tmp/x.csv"})
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	_, err = NewSource(SourceConfig{Kind: "http"})
	assert.Error(t, err)
	_, err = NewSource(SourceConfig{Kind: "gopher"})
	assert.Error(t, err)
}
