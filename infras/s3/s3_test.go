package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodgehub/config"
	"lodgehub/infras/otel/mocks"
)

func TestGetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "lodgehub"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.APIEndpoint = "https://s3.example.com"

	storage := New(cfg, mocks.NewOtel())

	tests := []struct {
		name   string
		bucket string
		url    string
		want   string
	}{
		{name: "public url", url: "https://cdn.example.com/id-proofs/6/a.png", want: "id-proofs/6/a.png"},
		{name: "public url with bucket", url: "https://cdn.example.com/lodgehub/id-proofs/6/a.png", want: "id-proofs/6/a.png"},
		{name: "api url", bucket: "archive", url: "https://s3.example.com/archive/x.pdf", want: "x.pdf"},
		{name: "foreign host", url: "https://elsewhere.com/a.png", want: ""},
		{name: "bare domain", url: "https://cdn.example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.GetObjectNameFromURL(tt.bucket, tt.url))
		})
	}
}

func TestGetObjectNameFromURL_NoDomainsConfigured(t *testing.T) {
	storage := New(&config.Config{}, mocks.NewOtel())

	assert.Empty(t, storage.GetObjectNameFromURL("lodgehub", "/a.png"))
}
