package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"ewintr.nl/vidtweet/model"
)

// Innertube fetches a caption track through YouTube's innertube /player
// endpoint and flattens the track's timedtext XML to plain text. One
// attempt, one language. Anything that goes wrong collapses to
// ErrNoTranscript.
type Innertube struct {
	playerURL string
	language  string
	client    *http.Client
}

const (
	innertubePlayerURL = "https://www.youtube.com/youtubei/v1/player?prettyPrint=false"
	androidClientVer   = "19.09.37"
	androidUserAgent   = "com.google.android.youtube/" + androidClientVer + " (Linux; U; Android 11) gzip"
)

func NewInnertube(language string) *Innertube {
	return &Innertube{
		playerURL: innertubePlayerURL,
		language:  language,
		client:    &http.Client{},
	}
}

type playerRequest struct {
	VideoID string        `json:"videoId"`
	Context playerContext `json:"context"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion"`
}

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type timedText struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

func (i *Innertube) FetchTranscript(ctx context.Context, ytID model.YoutubeVideoID) (string, error) {
	tracks, err := i.captionTracks(ctx, ytID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoTranscript, err)
	}

	track, ok := pickTrack(tracks, i.language)
	if !ok {
		return "", fmt.Errorf("%w: no %s track", ErrNoTranscript, i.language)
	}

	text, err := i.timedText(ctx, track.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoTranscript, err)
	}

	return text, nil
}

func (i *Innertube) captionTracks(ctx context.Context, ytID model.YoutubeVideoID) ([]captionTrack, error) {
	body, err := json.Marshal(playerRequest{
		VideoID: string(ytID),
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidClientVer,
				AndroidSdkVersion: 30,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.playerURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("could not decode player response: %w", err)
	}
	if player.Captions == nil {
		return nil, fmt.Errorf("video has no captions")
	}

	return player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

func (i *Innertube) timedText(ctx context.Context, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := i.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("could not parse timedtext: %w", err)
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty transcript")
	}

	return sb.String(), nil
}

// pickTrack prefers a manual track in the wanted language over an
// auto-generated one. Other languages are not considered.
func pickTrack(tracks []captionTrack, language string) (captionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == language && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == language {
			return t, true
		}
	}

	return captionTrack{}, false
}
