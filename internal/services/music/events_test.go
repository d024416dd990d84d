package music

import (
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pearl/internal/models"
)

func (s *MusicServiceTestSuite) TestVoiceUpdates_ActivateConnectingSession() {
	session := s.seedSession(models.SessionStateConnecting, nil, entries("a", "b")...)

	err := s.svc.UpdateVoiceState(s.ctx, &UpdateVoiceStateInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testVoiceID,
		SessionID: "voice-session",
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStateConnecting, session.State)

	gomock.InOrder(
		s.mockNode.EXPECT().UpdateVoice(gomock.Any(), s.testGuildID, models.VoiceServer{
			Token:     "voice-token",
			Endpoint:  "voice.example.com",
			SessionID: "voice-session",
		}).Return(nil),
		s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, entry("a").Track).Return(nil),
	)

	err = s.svc.UpdateVoiceServer(s.ctx, &UpdateVoiceServerInput{
		GuildID:  s.testGuildID,
		Token:    "voice-token",
		Endpoint: "voice.example.com",
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStateActive, session.State)
	s.Equal("a", session.Current.ID)
}

func (s *MusicServiceTestSuite) TestVoiceUpdates_RestoreVolume() {
	session := s.seedSession(models.SessionStateConnecting, nil)
	session.Volume = 40
	p := s.playerFor(s.testGuildID)
	p.voice = voiceCredentials{sessionID: "voice-session"}

	s.mockNode.EXPECT().UpdateVoice(gomock.Any(), s.testGuildID, gomock.Any()).Return(nil)
	s.mockNode.EXPECT().SetVolume(gomock.Any(), s.testGuildID, 40).Return(nil)
	s.mockClock.EXPECT().AfterFunc(DefaultIdleTimeout, gomock.Any()).Return(s.mockTimer)

	err := s.svc.UpdateVoiceServer(s.ctx, &UpdateVoiceServerInput{
		GuildID:  s.testGuildID,
		Token:    "voice-token",
		Endpoint: "voice.example.com",
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStateIdlePending, session.State)
}

func (s *MusicServiceTestSuite) TestVoiceState_MovedChannelResetsVotes() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current)
	session.Votes.Add("someone")

	err := s.svc.UpdateVoiceState(s.ctx, &UpdateVoiceStateInput{
		GuildID:   s.testGuildID,
		ChannelID: "new-voice-id",
		SessionID: "voice-session",
	})
	s.Require().NoError(err)
	s.Equal("new-voice-id", session.VoiceChannelID)
	s.Equal(0, session.Votes.Count())
}

func (s *MusicServiceTestSuite) TestVoiceState_KickedTearsDownWithoutLeaving() {
	s.seedSession(models.SessionStateActive, nil)

	s.mockNode.EXPECT().Destroy(gomock.Any(), s.testGuildID).Return(nil)
	s.mockRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil)

	err := s.svc.UpdateVoiceState(s.ctx, &UpdateVoiceStateInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Empty(s.svc.players.players)
}

func (s *MusicServiceTestSuite) TestVoiceState_LateLeaveKeepsNewSession() {
	s.seedSession(models.SessionStateActive, nil)

	gomock.InOrder(
		s.mockGateway.EXPECT().LeaveChannel(gomock.Any(), s.testGuildID).Return(nil),
		s.mockNode.EXPECT().Destroy(gomock.Any(), s.testGuildID).Return(nil),
		s.mockRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil),
	)
	_, err := s.svc.Disconnect(s.ctx, &DisconnectInput{Requester: s.requester(s.testDJID)})
	s.Require().NoError(err)

	s.mockGateway.EXPECT().JoinChannel(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().LoadTracks(gomock.Any(), gomock.Any()).Return(&models.LoadResult{
		Type:   models.LoadTypeTrack,
		Tracks: []models.Track{entry("a").Track},
	}, nil)
	_, err = s.svc.Play(s.ctx, &PlayInput{
		Requester:  s.requester(s.testDJID),
		Query:      "song",
		CanConnect: true,
	})
	s.Require().NoError(err)

	// the leave from the disconnect arrives after the new session was created
	err = s.svc.UpdateVoiceState(s.ctx, &UpdateVoiceStateInput{GuildID: s.testGuildID, SessionID: "voice-session"})
	s.Require().NoError(err)

	s.Require().Contains(s.svc.players.players, s.testGuildID)
	session := s.playerFor(s.testGuildID).session
	s.Equal(models.SessionStateConnecting, session.State)
	s.Len(session.Queue, 1)
}

func (s *MusicServiceTestSuite) TestVoiceState_LeaveAfterJoinTearsDownConnecting() {
	s.seedSession(models.SessionStateConnecting, nil)

	s.Require().NoError(s.svc.UpdateVoiceState(s.ctx, &UpdateVoiceStateInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testVoiceID,
		SessionID: "voice-session",
	}))

	s.mockNode.EXPECT().Destroy(gomock.Any(), s.testGuildID).Return(nil)
	s.mockRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.svc.UpdateVoiceState(s.ctx, &UpdateVoiceStateInput{GuildID: s.testGuildID, SessionID: "voice-session"}))
	s.Empty(s.svc.players.players)
}

func (s *MusicServiceTestSuite) TestVoiceUpdates_UnknownGuild() {
	s.NoError(s.svc.UpdateVoiceServer(s.ctx, &UpdateVoiceServerInput{GuildID: "unknown", Token: "t", Endpoint: "e"}))
	s.NoError(s.svc.UpdateVoiceState(s.ctx, &UpdateVoiceStateInput{GuildID: "unknown", ChannelID: "c"}))
	s.Empty(s.svc.players.players)
}

func (s *MusicServiceTestSuite) TestHandleEvent_TrackStartAnnounces() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current)
	session.Votes.Add("someone")

	s.mockNotifier.EXPECT().Notify(gomock.Any(), &models.Notification{
		Type:      models.NotificationNowPlaying,
		GuildID:   s.testGuildID,
		ChannelID: s.testTextID,
		Entry:     &current,
	}).Return(nil)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:    models.PlayerEventTrackStart,
		GuildID: s.testGuildID,
		Track:   current.Track.Encoded,
	})
	s.Require().NoError(err)
	s.Equal(0, session.Votes.Count())
}

func (s *MusicServiceTestSuite) TestHandleEvent_ReplacedTrackDoesNotAdvance() {
	current := entry("b")
	session := s.seedSession(models.SessionStateActive, &current, entries("c")...)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:      models.PlayerEventTrackEnd,
		GuildID:   s.testGuildID,
		Track:     entry("a").Track.Encoded,
		EndReason: models.TrackEndReplaced,
	})
	s.Require().NoError(err)
	s.Equal("b", session.Current.ID)
	s.Equal([]string{"c"}, queueIDs(session.Queue))
}

func (s *MusicServiceTestSuite) TestHandleEvent_StaleTrackEndIgnored() {
	current := entry("b")
	session := s.seedSession(models.SessionStateActive, &current)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:      models.PlayerEventTrackEnd,
		GuildID:   s.testGuildID,
		Track:     entry("a").Track.Encoded,
		EndReason: models.TrackEndFinished,
	})
	s.Require().NoError(err)
	s.Equal("b", session.Current.ID)
}

func (s *MusicServiceTestSuite) TestHandleEvent_StuckTrackSkips() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current, entries("b")...)

	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, entry("b").Track).Return(nil)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:     models.PlayerEventTrackStuck,
		GuildID:  s.testGuildID,
		Track:    current.Track.Encoded,
		Position: 10 * time.Second,
	})
	s.Require().NoError(err)
	s.Equal("b", session.Current.ID)
}

func (s *MusicServiceTestSuite) TestHandleEvent_ExceptionNotifies() {
	current := entry("a")
	s.seedSession(models.SessionStateActive, &current)

	s.mockNotifier.EXPECT().Notify(gomock.Any(), &models.Notification{
		Type:      models.NotificationTrackFailed,
		GuildID:   s.testGuildID,
		ChannelID: s.testTextID,
		Entry:     &current,
		Message:   "video unavailable",
	}).Return(nil)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:    models.PlayerEventTrackException,
		GuildID: s.testGuildID,
		Track:   current.Track.Encoded,
		Message: "video unavailable",
	})
	s.NoError(err)
}

func (s *MusicServiceTestSuite) TestHandleEvent_PlayerUpdateStoresPosition() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:     models.PlayerEventPlayerUpdate,
		GuildID:  s.testGuildID,
		Position: 42 * time.Second,
	})
	s.Require().NoError(err)
	s.Equal(42*time.Second, session.Position)
}

func (s *MusicServiceTestSuite) TestHandleEvent_VoiceClosedTearsDown() {
	s.seedSession(models.SessionStateActive, nil)

	s.mockGateway.EXPECT().LeaveChannel(gomock.Any(), s.testGuildID).Return(nil)
	s.mockNode.EXPECT().Destroy(gomock.Any(), s.testGuildID).Return(nil)
	s.mockRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:    models.PlayerEventVoiceClosed,
		GuildID: s.testGuildID,
		Code:    4004,
		Message: "authentication failed",
	})
	s.Require().NoError(err)
	s.Empty(s.svc.players.players)
}

func (s *MusicServiceTestSuite) TestHandleEvent_RecoverableVoiceCloseKeepsSession() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current, entries("b")...)

	for _, code := range []int{4006, 4014, 4015} {
		err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{
			Type:    models.PlayerEventVoiceClosed,
			GuildID: s.testGuildID,
			Code:    code,
		})
		s.Require().NoError(err)
	}

	s.Require().Contains(s.svc.players.players, s.testGuildID)
	s.Equal(models.SessionStateActive, session.State)
	s.Equal("a", session.Current.ID)
	s.Equal([]string{"b"}, queueIDs(session.Queue))
}

func (s *MusicServiceTestSuite) TestHandleEvent_UnknownGuild() {
	s.NoError(s.svc.HandleEvent(s.ctx, models.PlayerEvent{
		Type:    models.PlayerEventTrackStart,
		GuildID: "unknown",
	}))
}

func (s *MusicServiceTestSuite) TestHandleEvent_NodeReadyRestoresPlayers() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current, entries("b")...)
	session.Position = 90 * time.Second
	session.Paused = true
	session.Volume = 30
	s.playerFor(s.testGuildID).voice = voiceCredentials{
		token:     "voice-token",
		endpoint:  "voice.example.com",
		sessionID: "voice-session",
	}

	gomock.InOrder(
		s.mockNode.EXPECT().UpdateVoice(gomock.Any(), s.testGuildID, models.VoiceServer{
			Token:     "voice-token",
			Endpoint:  "voice.example.com",
			SessionID: "voice-session",
		}).Return(nil),
		s.mockNode.EXPECT().SetVolume(gomock.Any(), s.testGuildID, 30).Return(nil),
		s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, current.Track).Return(nil),
		s.mockNode.EXPECT().Seek(gomock.Any(), s.testGuildID, 90*time.Second).Return(nil),
		s.mockNode.EXPECT().Pause(gomock.Any(), s.testGuildID, true).Return(nil),
	)

	err := s.svc.HandleEvent(s.ctx, models.PlayerEvent{Type: models.PlayerEventNodeReady})
	s.Require().NoError(err)
	s.Equal("a", session.Current.ID)
	s.Equal([]string{"b"}, queueIDs(session.Queue))
}

func (s *MusicServiceTestSuite) TestHandleEvent_NodeReadyMovesPastUnplayableTrack() {
	current := entry("a")
	session := s.seedSession(models.SessionStateActive, &current, entries("b")...)
	s.playerFor(s.testGuildID).voice = voiceCredentials{token: "t", endpoint: "e", sessionID: "v"}

	s.mockNode.EXPECT().UpdateVoice(gomock.Any(), s.testGuildID, gomock.Any()).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, current.Track).Return(errors.New("gone"))
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, entry("b").Track).Return(nil)

	s.Require().NoError(s.svc.HandleEvent(s.ctx, models.PlayerEvent{Type: models.PlayerEventNodeReady}))
	s.Equal("b", session.Current.ID)
}

func (s *MusicServiceTestSuite) TestHandleEvent_NodeReadySkipsResumedAndConnecting() {
	current := entry("a")
	s.seedSession(models.SessionStateActive, &current)
	s.playerFor(s.testGuildID).voice = voiceCredentials{token: "t", endpoint: "e", sessionID: "v"}

	s.Require().NoError(s.svc.HandleEvent(s.ctx, models.PlayerEvent{Type: models.PlayerEventNodeReady, Resumed: true}))

	s.playerFor(s.testGuildID).session.State = models.SessionStateConnecting
	s.Require().NoError(s.svc.HandleEvent(s.ctx, models.PlayerEvent{Type: models.PlayerEventNodeReady}))
}
