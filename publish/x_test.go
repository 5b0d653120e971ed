package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestX(t *testing.T, handler http.HandlerFunc) *X {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	x := NewX(XInfo{
		ApiKey:            "key",
		ApiSecret:         "secret",
		AccessToken:       "token",
		AccessTokenSecret: "token-secret",
	})
	x.postURL = srv.URL

	return x
}

func TestXPublish(t *testing.T) {
	var gotAuth string
	var gotBody tweetRequest
	x := newTestX(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"data":{"id":"1650000000000000001","text":"..."}}`)
	})

	postID, err := x.Publish(context.Background(), "요약 텍스트 #tag1 #tag2", "https://youtu.be/xyz789")

	require.NoError(t, err)
	assert.Equal(t, "1650000000000000001", postID)
	assert.Equal(t, "요약 텍스트 #tag1 #tag2\n\nhttps://youtu.be/xyz789", gotBody.Text)
	assert.Contains(t, gotAuth, `OAuth oauth_consumer_key="key"`)
}

func TestXPublishFailure(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			body:   `{"title":"Forbidden","detail":"duplicate content"}`,
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"title":"Too Many Requests"}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			x := newTestX(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			})

			_, err := x.Publish(context.Background(), "text", "link")

			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("status %d", tc.status))
		})
	}
}
