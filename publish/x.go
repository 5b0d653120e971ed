package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dghubble/oauth1"
)

const tweetsURL = "https://api.x.com/2/tweets"

type XInfo struct {
	ApiKey            string
	ApiSecret         string
	AccessToken       string
	AccessTokenSecret string
}

// X posts to X (formerly Twitter) through the v2 tweets endpoint with
// OAuth1 user-context signing.
type X struct {
	postURL string
	client  *http.Client
}

func NewX(xInfo XInfo) *X {
	config := oauth1.NewConfig(xInfo.ApiKey, xInfo.ApiSecret)
	token := oauth1.NewToken(xInfo.AccessToken, xInfo.AccessTokenSecret)

	return &X{
		postURL: tweetsURL,
		client:  config.Client(oauth1.NoContext, token),
	}
}

type tweetRequest struct {
	Text string `json:"text"`
}

type tweetResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (x *X) Publish(ctx context.Context, text, link string) (string, error) {
	body, err := json.Marshal(tweetRequest{
		Text: fmt.Sprintf("%s\n\n%s", text, link),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.postURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not post tweet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("could not post tweet: status %d: %s", resp.StatusCode, msg)
	}

	var tweet tweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&tweet); err != nil {
		return "", fmt.Errorf("could not decode tweet response: %w", err)
	}

	return tweet.Data.ID, nil
}
