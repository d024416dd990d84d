package music

import (
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/models"
)

// captureIdle expects the idle timer to be armed and returns its callback
func (s *MusicServiceTestSuite) captureIdle() *func() {
	var fire func()
	s.mockClock.EXPECT().AfterFunc(DefaultIdleTimeout, gomock.Any()).DoAndReturn(func(d time.Duration, f func()) clock.Timer {
		fire = f
		return s.mockTimer
	})
	return &fire
}

func (s *MusicServiceTestSuite) TestIdle_DisconnectsExactlyOnce() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current)
	fire := s.captureIdle()

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:      models.PlayerEventTrackEnd,
		GuildID:   s.testGuildID,
		Track:     current.Track.Encoded,
		EndReason: models.TrackEndFinished,
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStateIdlePending, session.State)
	s.Nil(session.Current)
	s.Require().NotNil(*fire)

	s.mockGateway.EXPECT().LeaveChannel(gomock.Any(), s.testGuildID).Return(nil).Times(1)
	s.mockNode.EXPECT().Destroy(gomock.Any(), s.testGuildID).Return(nil).Times(1)
	s.mockRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), &models.Notification{
		Type:      models.NotificationIdleDisconnect,
		GuildID:   s.testGuildID,
		ChannelID: s.testTextID,
	}).Return(nil).Times(1)

	(*fire)()
	(*fire)()

	s.Empty(s.svc.players.players)
	s.Equal(models.SessionStateAbsent, session.State)
}

func (s *MusicServiceTestSuite) TestIdle_CancelledByNewTrack() {
	session := s.seedSession(models.SessionStateActive, nil)
	fire := s.captureIdle()

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:    models.PlayerEventQueueEnd,
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStateIdlePending, session.State)

	s.mockNode.EXPECT().LoadTracks(gomock.Any(), gomock.Any()).Return(&models.LoadResult{
		Type:   models.LoadTypeTrack,
		Tracks: []models.Track{entry("b").Track},
	}, nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, entry("b").Track).Return(nil)

	_, err = s.svc.Play(s.ctx, &PlayInput{Requester: s.requester(s.testListenerID), Query: "b"})
	s.Require().NoError(err)
	s.Equal(models.SessionStateActive, session.State)

	// a timer that already fired must not tear the session down
	(*fire)()

	s.Contains(s.svc.players.players, s.testGuildID)
	s.Equal(models.SessionStateActive, session.State)
}

func (s *MusicServiceTestSuite) TestIdle_RearmUsesLatestTimer() {
	session := s.seedSession(models.SessionStateActive, nil)
	first := s.captureIdle()
	second := s.captureIdle()

	queueEnd := models.PlayerEvent{Type: models.PlayerEventQueueEnd, GuildID: s.testGuildID}
	s.Require().NoError(s.svc.HandleEvent(s.ctx, queueEnd))

	session.State = models.SessionStateActive
	s.Require().NoError(s.svc.HandleEvent(s.ctx, queueEnd))

	(*first)()
	s.Contains(s.svc.players.players, s.testGuildID)

	s.mockGateway.EXPECT().LeaveChannel(gomock.Any(), s.testGuildID).Return(nil)
	s.mockNode.EXPECT().Destroy(gomock.Any(), s.testGuildID).Return(nil)
	s.mockRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	(*second)()
	s.Empty(s.svc.players.players)
}

func (s *MusicServiceTestSuite) TestStartNext_PlayFailureArmsIdle() {
	session := s.seedSession(models.SessionStateActive, nil, entries("a")...)
	p := s.playerFor(s.testGuildID)

	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, entry("a").Track).Return(errors.New("node unavailable"))
	s.mockClock.EXPECT().AfterFunc(DefaultIdleTimeout, gomock.Any()).Return(s.mockTimer)

	err := s.svc.startNext(s.ctx, p)
	s.Error(err)
	s.Nil(session.Current)
	s.Equal(models.SessionStateIdlePending, session.State)
}

func (s *MusicServiceTestSuite) TestTrackEnd_RepeatRequeues() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current, entries("b")...)
	session.Repeat = true

	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, entry("b").Track).Return(nil)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:      models.PlayerEventTrackEnd,
		GuildID:   s.testGuildID,
		Track:     current.Track.Encoded,
		EndReason: models.TrackEndFinished,
	})
	s.Require().NoError(err)
	s.Equal("b", session.Current.ID)
	s.Equal([]string{"a"}, queueIDs(session.Queue))
}
