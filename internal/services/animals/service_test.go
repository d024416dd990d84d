package animals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type AnimalsServiceTestSuite struct {
	suite.Suite
	server *httptest.Server
	svc    *service
	ctx    context.Context

	catStatus int
	catBody   string
	dogStatus int
	dogBody   string
}

func (s *AnimalsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catStatus = http.StatusOK
	s.catBody = `{"file":"https://purr.objects-us-east-1.dream.io/i/cat.jpg"}`
	s.dogStatus = http.StatusOK
	s.dogBody = `{"fileSizeBytes":1024,"url":"https://random.dog/dog.gif"}`

	mux := http.NewServeMux()
	mux.HandleFunc("/meow", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(s.catStatus)
		_, _ = w.Write([]byte(s.catBody))
	})
	mux.HandleFunc("/woof.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(s.dogStatus)
		_, _ = w.Write([]byte(s.dogBody))
	})
	s.server = httptest.NewServer(mux)

	svc, err := New(&Config{
		CatURL:            s.server.URL + "/meow",
		DogURL:            s.server.URL + "/woof.json",
		RequestsPerSecond: 1000,
		HTTPClient:        s.server.Client(),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *AnimalsServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func TestAnimalsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnimalsServiceTestSuite))
}

func (s *AnimalsServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{CatURL: DefaultCatURL})
	s.ErrorIs(err, ErrMissingURL)
}

func (s *AnimalsServiceTestSuite) TestRandomCat() {
	out, err := s.svc.RandomCat(s.ctx)
	s.Require().NoError(err)
	s.Equal("https://purr.objects-us-east-1.dream.io/i/cat.jpg", out.URL)
}

func (s *AnimalsServiceTestSuite) TestRandomDog() {
	out, err := s.svc.RandomDog(s.ctx)
	s.Require().NoError(err)
	s.Equal("https://random.dog/dog.gif", out.URL)
}

func (s *AnimalsServiceTestSuite) TestNonOKStatus() {
	s.catStatus = http.StatusServiceUnavailable

	_, err := s.svc.RandomCat(s.ctx)
	s.ErrorIs(err, ErrBadResponse)
}

func (s *AnimalsServiceTestSuite) TestInvalidBody() {
	s.dogBody = `<html>`

	_, err := s.svc.RandomDog(s.ctx)
	s.ErrorIs(err, ErrBadResponse)

	s.dogBody = `{"url":""}`
	_, err = s.svc.RandomDog(s.ctx)
	s.ErrorIs(err, ErrBadResponse)
}

func (s *AnimalsServiceTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.svc.RandomCat(ctx)
	s.Error(err)
}
