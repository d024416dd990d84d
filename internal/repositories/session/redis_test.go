package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/pearl/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newSession(guildID string) *models.MusicSession {
	return &models.MusicSession{
		ID:             "session-" + guildID,
		GuildID:        guildID,
		VoiceChannelID: "voice-channel-id",
		TextChannelID:  "text-channel-id",
		DJID:           "dj-user-id",
		State:          models.SessionStateActive,
		Volume:         100,
		Current: &models.QueueEntry{
			ID:          "entry-1",
			RequesterID: "dj-user-id",
			Track: models.Track{
				Encoded: "encoded-1",
				Title:   "Song One",
				Author:  "Artist",
				Length:  3 * time.Minute,
			},
			EnqueuedAt: s.testNow,
		},
		Queue: []models.QueueEntry{
			{
				ID:          "entry-2",
				RequesterID: "listener-id",
				Track: models.Track{
					Encoded: "encoded-2",
					Title:   "Song Two",
					Length:  2 * time.Minute,
				},
				EnqueuedAt: s.testNow,
			},
		},
		Votes:     models.VoteState{Voters: []string{"listener-id"}},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{
		Session: s.newSession("guild-1"),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("session-guild-1", retrieved.ID)
	s.Equal("dj-user-id", retrieved.DJID)
	s.Equal(models.SessionStateActive, retrieved.State)
	s.Require().NotNil(retrieved.Current)
	s.Equal("Song One", retrieved.Current.Track.Title)
	s.Len(retrieved.Queue, 1)
	s.Equal("encoded-2", retrieved.Queue[0].Track.Encoded)
	s.Equal(1, retrieved.Votes.Count())
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{GuildID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSessionValidation() {
	s.Error(s.repo.SaveSession(s.ctx, nil))
	s.Error(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: &models.MusicSession{}}))
}

func (s *RedisRepositoryTestSuite) TestSaveSessionSetsTTL() {
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{
		Session: s.newSession("guild-1"),
	}))

	s.Equal(time.Hour, s.mr.TTL(sessionKey("guild-1")))

	s.mr.FastForward(2 * time.Hour)

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{GuildID: "guild-1"})
	s.ErrorIs(err, ErrSessionNotFound)

	// The dangling index entry is dropped on the next listing
	out, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(out.Sessions)
	members, err := s.client.SMembers(s.ctx, activeGuildsKey).Result()
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{
		Session: s.newSession("guild-1"),
	}))

	s.Require().NoError(s.repo.DeleteSession(s.ctx, &DeleteSessionInput{GuildID: "guild-1"}))

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{GuildID: "guild-1"})
	s.ErrorIs(err, ErrSessionNotFound)

	out, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(out.Sessions)
}

func (s *RedisRepositoryTestSuite) TestListSessionsOrdered() {
	for _, guildID := range []string{"guild-b", "guild-a", "guild-c"} {
		s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{
			Session: s.newSession(guildID),
		}))
	}

	out, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 3)
	s.Equal("guild-a", out.Sessions[0].GuildID)
	s.Equal("guild-b", out.Sessions[1].GuildID)
	s.Equal("guild-c", out.Sessions[2].GuildID)
}

func (s *RedisRepositoryTestSuite) TestPurgeSessions() {
	for _, guildID := range []string{"guild-a", "guild-b"} {
		s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{
			Session: s.newSession(guildID),
		}))
	}

	out, err := s.repo.PurgeSessions(s.ctx, &PurgeSessionsInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Removed)

	list, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(list.Sessions)

	out, err = s.repo.PurgeSessions(s.ctx, &PurgeSessionsInput{})
	s.Require().NoError(err)
	s.Zero(out.Removed)
}
