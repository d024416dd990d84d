package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ImagesServiceTestSuite struct {
	suite.Suite
	server *httptest.Server
	svc    *service
	ctx    context.Context

	status      int
	contentType string
	body        []byte

	lastPath  string
	lastQuery url.Values
	lastAuth  string
}

func (s *ImagesServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.status = http.StatusOK
	s.contentType = "image/png"
	s.body = []byte("\x89PNG fake image")

	mux := http.NewServeMux()
	mux.HandleFunc("/image/", func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastQuery = r.URL.Query()
		s.lastAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", s.contentType)
		w.WriteHeader(s.status)
		_, _ = w.Write(s.body)
	})
	s.server = httptest.NewServer(mux)

	svc, err := New(&Config{
		URL:               s.server.URL + "/",
		Token:             "test-token",
		RequestsPerSecond: 1000,
		HTTPClient:        s.server.Client(),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ImagesServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func TestImagesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImagesServiceTestSuite))
}

func (s *ImagesServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Token: "token"})
	s.ErrorIs(err, ErrMissingURL)

}

func (s *ImagesServiceTestSuite) TestTransform_MissingToken() {
	svc, err := New(&Config{URL: s.server.URL, HTTPClient: s.server.Client()})
	s.Require().NoError(err)

	_, err = svc.Transform(s.ctx, &TransformInput{Effect: EffectWasted, URL: "https://example.com/a.png"})
	s.ErrorIs(err, ErrMissingToken)
	s.Empty(s.lastPath)
}

func (s *ImagesServiceTestSuite) TestTransform() {
	out, err := s.svc.Transform(s.ctx, &TransformInput{
		Effect: EffectWasted,
		URL:    "https://cdn.discordapp.com/avatars/1/abc.png?size=1024",
	})
	s.Require().NoError(err)

	s.Equal(s.body, out.Data)
	s.Equal("image/png", out.ContentType)
	s.Equal("png", out.Extension)

	s.Equal("/image/wasted/", s.lastPath)
	s.Equal("https://cdn.discordapp.com/avatars/1/abc.png?size=1024", s.lastQuery.Get("url"))
	s.False(s.lastQuery.Has("url2"))
	s.Equal("test-token", s.lastAuth)
}

func (s *ImagesServiceTestSuite) TestTransform_TwoImages() {
	s.contentType = "image/gif"

	out, err := s.svc.Transform(s.ctx, &TransformInput{
		Effect:    EffectWhyAreYouGay,
		URL:       "https://example.com/member.png",
		SecondURL: "https://example.com/author.png",
	})
	s.Require().NoError(err)

	s.Equal("gif", out.Extension)
	s.Equal("/image/whyareyougay/", s.lastPath)
	s.Equal("https://example.com/member.png", s.lastQuery.Get("url"))
	s.Equal("https://example.com/author.png", s.lastQuery.Get("url2"))
}

func (s *ImagesServiceTestSuite) TestTransform_InvalidInput() {
	testCases := []struct {
		name  string
		input *TransformInput
		err   error
	}{
		{name: "nil input", input: nil, err: ErrMissingImage},
		{name: "missing url", input: &TransformInput{Effect: EffectJail}, err: ErrMissingImage},
		{name: "unknown effect", input: &TransformInput{Effect: "blur", URL: "https://example.com/a.png"}, err: ErrUnknownEffect},
		{
			name:  "missing second url",
			input: &TransformInput{Effect: EffectWhyAreYouGay, URL: "https://example.com/a.png"},
			err:   ErrMissingImage,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.lastPath = ""
			_, err := s.svc.Transform(s.ctx, tc.input)
			s.ErrorIs(err, tc.err)
			s.Empty(s.lastPath)
		})
	}
}

func (s *ImagesServiceTestSuite) TestTransform_NonOKStatus() {
	s.status = http.StatusForbidden
	s.contentType = "application/json"
	s.body = []byte(`{"message":"invalid token"}`)

	_, err := s.svc.Transform(s.ctx, &TransformInput{Effect: EffectInvert, URL: "https://example.com/a.png"})
	s.ErrorIs(err, ErrBadResponse)
}

func (s *ImagesServiceTestSuite) TestTransform_NonImageBody() {
	s.contentType = "application/json"
	s.body = []byte(`{"message":"rate limited"}`)

	_, err := s.svc.Transform(s.ctx, &TransformInput{Effect: EffectSobel, URL: "https://example.com/a.png"})
	s.ErrorIs(err, ErrBadResponse)
}

func (s *ImagesServiceTestSuite) TestTransform_EmptyImage() {
	s.body = nil

	_, err := s.svc.Transform(s.ctx, &TransformInput{Effect: EffectPixel, URL: "https://example.com/a.png"})
	s.ErrorIs(err, ErrBadResponse)
}

func (s *ImagesServiceTestSuite) TestTransform_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.svc.Transform(ctx, &TransformInput{Effect: EffectTriggered, URL: "https://example.com/a.png"})
	s.Error(err)
}
