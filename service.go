package main

import (
	"context"
	"os"
	"strconv"

	"ewintr.nl/vidtweet/fetch"
	"ewintr.nl/vidtweet/process"
	"ewintr.nl/vidtweet/publish"
	"ewintr.nl/vidtweet/storage"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type configuration struct {
	FeedURL            string
	FeedBackend        string
	MinifluxEndpoint   string
	MinifluxApiKey     string
	MinifluxFeedID     int64
	MarkerPath         string
	TranscriptLanguage string
	YoutubeApiKey      string
	OpenAIApiKey       string
	OpenAIBaseURL      string
	OpenAIModel        string
	XApiKey            string
	XApiSecret         string
	XAccessToken       string
	XAccessTokenSecret string
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout)).
		With(slog.String("run", uuid.New().String()))

	conf := configuration{
		FeedURL:            getParam("FEED_URL", "https://www.youtube.com/feeds/videos.xml?channel_id=UCnwTpaRmErJXgJTrVixeSNA"),
		FeedBackend:        getParam("FEED_BACKEND", "rss"),
		MinifluxEndpoint:   getParam("MINIFLUX_ENDPOINT", "http://localhost/v1"),
		MinifluxApiKey:     getParam("MINIFLUX_APIKEY", ""),
		MarkerPath:         getParam("MARKER_FILE", "last_video_id.txt"),
		TranscriptLanguage: getParam("TRANSCRIPT_LANGUAGE", "ko"),
		YoutubeApiKey:      getParam("YOUTUBE_API_KEY", ""),
		OpenAIApiKey:       getParam("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getParam("OPENAI_BASE_URL", ""),
		OpenAIModel:        getParam("OPENAI_MODEL", "gpt-4"),
		XApiKey:            getParam("TWITTER_API_KEY", ""),
		XApiSecret:         getParam("TWITTER_API_SECRET", ""),
		XAccessToken:       getParam("TWITTER_ACCESS_TOKEN", ""),
		XAccessTokenSecret: getParam("TWITTER_ACCESS_TOKEN_SECRET", ""),
	}
	feedID, err := strconv.ParseInt(getParam("MINIFLUX_FEED_ID", "0"), 10, 64)
	if err != nil {
		logger.Error("invalid miniflux feed id", err)
		os.Exit(1)
	}
	conf.MinifluxFeedID = feedID

	if conf.OpenAIApiKey == "" {
		logger.Error("OPENAI_API_KEY is not set", nil)
		os.Exit(1)
	}
	if conf.XApiKey == "" || conf.XApiSecret == "" || conf.XAccessToken == "" || conf.XAccessTokenSecret == "" {
		logger.Error("twitter api keys are missing", nil)
		os.Exit(1)
	}

	var feedReader fetch.FeedReader
	switch conf.FeedBackend {
	case "rss":
		feedReader = fetch.NewRSSFeedReader(conf.FeedURL)
	case "miniflux":
		feedReader = fetch.NewMiniflux(fetch.MinifluxInfo{
			Endpoint: conf.MinifluxEndpoint,
			ApiKey:   conf.MinifluxApiKey,
			FeedID:   conf.MinifluxFeedID,
		})
	default:
		logger.Error("unknown feed backend", nil, slog.String("backend", conf.FeedBackend))
		os.Exit(1)
	}

	var metadata fetch.MetadataFetcher
	if conf.YoutubeApiKey != "" {
		ytClient, err := youtube.NewService(ctx, option.WithAPIKey(conf.YoutubeApiKey))
		if err != nil {
			logger.Error("unable to create youtube service", err)
			os.Exit(1)
		}
		metadata = fetch.NewYoutube(ytClient)
	}

	run := process.NewRun(
		storage.NewFileMarker(conf.MarkerPath),
		feedReader,
		fetch.NewInnertube(conf.TranscriptLanguage),
		metadata,
		fetch.NewOpenAI(conf.OpenAIApiKey, conf.OpenAIBaseURL, conf.OpenAIModel),
		publish.NewX(publish.XInfo{
			ApiKey:            conf.XApiKey,
			ApiSecret:         conf.XApiSecret,
			AccessToken:       conf.XAccessToken,
			AccessTokenSecret: conf.XAccessTokenSecret,
		}),
		logger,
	)

	outcome := run.Do(ctx)
	logger.Info("run finished", slog.String("outcome", string(outcome)))
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
