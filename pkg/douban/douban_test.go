package douban

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Adda-Baaj/douban-client/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResponse struct {
	body       []byte
	statusCode int
}

func (s stubResponse) Body() []byte    { return s.body }
func (s stubResponse) StatusCode() int { return s.statusCode }

// stubClient returns a preset response or error and records the call.
type stubClient struct {
	resp    httpclient.Response
	err     error
	calls   int
	url     string
	headers map[string]string
}

func (s *stubClient) Get(_ context.Context, u string, headers map[string]string) (httpclient.Response, error) {
	s.calls++
	s.url = u
	s.headers = headers
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type fixedAgent string

func (f fixedAgent) RealUserAgent() string { return string(f) }

func TestBuildCategoriesQueryDefaults(t *testing.T) {
	q := BuildCategoriesQuery(CategoryParams{Kind: KindMovie, Category: "热门", Type: "全部"})

	keys := make([]string, 0, 5)
	for _, part := range strings.Split(q, "&") {
		keys = append(keys, strings.SplitN(part, "=", 2)[0])
	}
	assert.Equal(t, []string{"kind", "category", "type", "limit", "start"}, keys)

	decoded, err := url.QueryUnescape(q)
	require.NoError(t, err)
	assert.Equal(t, "kind=movie&category=热门&type=全部&limit=20&start=0", decoded)
}

func TestBuildCategoriesQueryEncodesValues(t *testing.T) {
	q := BuildCategoriesQuery(CategoryParams{
		Kind:      KindTV,
		Category:  "a&b",
		Type:      "x y",
		PageLimit: 50,
		PageStart: 100,
	})
	values, err := url.ParseQuery(q)
	require.NoError(t, err)
	assert.Len(t, values, 5)
	assert.Equal(t, "tv", values.Get("kind"))
	assert.Equal(t, "a&b", values.Get("category"))
	assert.Equal(t, "x y", values.Get("type"))
	assert.Equal(t, "50", values.Get("limit"))
	assert.Equal(t, "100", values.Get("start"))
}

func TestCategoriesURLTrimsBaseSlash(t *testing.T) {
	u := CategoriesURL("http://localhost:3000/", CategoryParams{Kind: KindTV})
	assert.True(t, strings.HasPrefix(u, "http://localhost:3000/api/douban/categories?kind=tv&"), u)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Movie ")
	require.NoError(t, err)
	assert.Equal(t, KindMovie, k)

	_, err = ParseKind("anime")
	assert.Error(t, err)
}

func TestCategoriesEndToEnd(t *testing.T) {
	var gotQuery string
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, CategoriesPath, r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, httpclient.NewRestyClient(2*time.Second), nil)
	require.NoError(t, err)

	res, err := client.Categories(context.Background(), CategoryParams{Kind: KindMovie, Category: "热门", Type: "全部"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, res.String())
	assert.Equal(t, 1, hits)

	decoded, err := url.QueryUnescape(gotQuery)
	require.NoError(t, err)
	assert.Equal(t, "kind=movie&category=热门&type=全部&limit=20&start=0", decoded)
}

func TestCategoriesReturnsBodyUnchanged(t *testing.T) {
	body := []byte(`{"total": 1, "items": [{"id":"1","title":"t"}]}`)
	stub := &stubClient{resp: stubResponse{body: body, statusCode: http.StatusOK}}
	client, err := NewClient("http://api.local", stub, nil)
	require.NoError(t, err)

	res, err := client.Categories(context.Background(), CategoryParams{Kind: KindTV, Category: "c", Type: "t"})
	require.NoError(t, err)
	assert.Equal(t, string(body), res.String())
	assert.Equal(t, 1, stub.calls)

	var decoded struct {
		Total int `json:"total"`
	}
	require.NoError(t, res.Decode(&decoded))
	assert.Equal(t, 1, decoded.Total)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(out))
}

func TestCategoriesNonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusMultipleChoices} {
		stub := &stubClient{resp: stubResponse{body: []byte(`{"items":[]}`), statusCode: status}}
		client, err := NewClient("http://api.local", stub, nil)
		require.NoError(t, err)

		res, err := client.Categories(context.Background(), CategoryParams{Kind: KindMovie})
		require.Error(t, err)
		assert.Nil(t, res)

		var reqErr *RequestError
		require.True(t, errors.As(err, &reqErr), "status %d", status)
		assert.Equal(t, "failed to fetch douban category data", reqErr.Error())
		assert.ErrorIs(t, err, ErrRequestFailed)
		assert.Equal(t, 1, stub.calls)
	}
}

func TestCategoriesPropagatesTransportError(t *testing.T) {
	boom := errors.New("connection reset")
	stub := &stubClient{err: boom}
	client, err := NewClient("http://api.local", stub, nil)
	require.NoError(t, err)

	_, err = client.Categories(context.Background(), CategoryParams{Kind: KindMovie})
	assert.Same(t, boom, err)
	assert.Equal(t, 1, stub.calls)
}

func TestCategoriesPropagatesParseError(t *testing.T) {
	stub := &stubClient{resp: stubResponse{body: []byte(`<html>`), statusCode: http.StatusOK}}
	client, err := NewClient("http://api.local", stub, nil)
	require.NoError(t, err)

	_, err = client.Categories(context.Background(), CategoryParams{Kind: KindMovie})
	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr), "got %T", err)
	assert.False(t, errors.Is(err, ErrRequestFailed))
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("  ", &stubClient{}, nil)
	assert.Error(t, err)
	_, err = NewClient("http://x", nil, nil)
	assert.Error(t, err)
}

func TestImageClientSendsImageHeaders(t *testing.T) {
	stub := &stubClient{resp: stubResponse{body: []byte{0x89, 'P', 'N', 'G'}, statusCode: http.StatusOK}}
	client := NewImageClient(stub, fixedAgent("test-agent"), nil)

	data, err := client.Fetch(context.Background(), "https://img.example/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
	assert.Equal(t, "https://img.example/p.jpg", stub.url)
	assert.Equal(t, "test-agent", stub.headers["User-Agent"])
	assert.Equal(t, "image", stub.headers["Sec-Fetch-Dest"])
	assert.Equal(t, "https://movie.douban.com/explore", stub.headers["Referer"])
}

func TestImageClientErrors(t *testing.T) {
	client := NewImageClient(&stubClient{resp: stubResponse{statusCode: http.StatusForbidden}}, nil, nil)
	_, err := client.Fetch(context.Background(), "https://img.example/p.jpg")
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "failed to fetch douban image", reqErr.Message)

	_, err = client.Fetch(context.Background(), " ")
	assert.Error(t, err)
}
