package music

import (
	"sync"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/models"
)

// idleCallbacks collects every idle timer callback armed during a test
type idleCallbacks struct {
	mu  sync.Mutex
	fns []func()
}

func (c *idleCallbacks) add(f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, f)
}

func (c *idleCallbacks) snapshot() []func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]func(){}, c.fns...)
}

func (s *MusicServiceTestSuite) TestConcurrentCommandsTearDownOnce() {
	s.seedSession(models.SessionStateActive, nil)

	callbacks := &idleCallbacks{}
	s.mockClock.EXPECT().AfterFunc(DefaultIdleTimeout, gomock.Any()).DoAndReturn(func(_ time.Duration, f func()) clock.Timer {
		callbacks.add(f)
		return s.mockTimer
	}).AnyTimes()

	s.mockNode.EXPECT().LoadTracks(gomock.Any(), gomock.Any()).Return(&models.LoadResult{
		Type:   models.LoadTypeTrack,
		Tracks: []models.Track{entry("a").Track},
	}, nil).AnyTimes()
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, gomock.Any()).Return(nil).AnyTimes()
	s.mockNode.EXPECT().Stop(gomock.Any(), s.testGuildID).Return(nil).AnyTimes()
	s.mockGateway.EXPECT().ChannelMembers(s.testGuildID, s.testVoiceID).Return([]models.VoiceMember{
		{UserID: s.testDJID}, {UserID: s.testListenerID}, {UserID: "third"}, {UserID: "fourth"},
	}, nil).AnyTimes()
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.mockGateway.EXPECT().LeaveChannel(gomock.Any(), s.testGuildID).Return(nil).Times(1)
	s.mockNode.EXPECT().Destroy(gomock.Any(), s.testGuildID).Return(nil).Times(1)
	s.mockRepo.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// arm the idle timer before the commands start
	s.Require().NoError(s.svc.HandleEvent(s.ctx, models.PlayerEvent{Type: models.PlayerEventQueueEnd, GuildID: s.testGuildID}))
	s.Require().Len(callbacks.snapshot(), 1)

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(4)
		go func() {
			defer wg.Done()
			<-start
			// without CanConnect a torn down session is never recreated
			s.svc.Play(s.ctx, &PlayInput{Requester: s.requester(s.testListenerID), Query: "song"})
		}()
		go func() {
			defer wg.Done()
			<-start
			s.svc.Skip(s.ctx, &SkipInput{Requester: s.requester(s.testListenerID)})
		}()
		go func(i int) {
			defer wg.Done()
			<-start
			if i == workers/2 {
				s.svc.Disconnect(s.ctx, &DisconnectInput{Requester: s.requester(s.testDJID)})
				return
			}
			s.svc.Skip(s.ctx, &SkipInput{Requester: s.requester(s.testDJID)})
		}(i)
		go func() {
			defer wg.Done()
			<-start
			for _, fire := range callbacks.snapshot() {
				fire()
			}
		}()
	}

	close(start)
	wg.Wait()

	// timers armed while the commands ran may fire late, they must not tear down again
	var late sync.WaitGroup
	for _, fire := range callbacks.snapshot() {
		late.Add(1)
		go func(fire func()) {
			defer late.Done()
			fire()
		}(fire)
	}
	late.Wait()

	s.Empty(s.svc.players.guildIDs())
}

func (s *MusicServiceTestSuite) TestAcquireSerializesOneGuild() {
	const workers = 32
	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := s.svc.players.acquire(s.testGuildID, true)
			p.session = &models.MusicSession{GuildID: s.testGuildID}

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			s.svc.players.release(p)
		}()
	}
	wg.Wait()

	s.Equal(1, maxSeen)
	s.Len(s.svc.players.guildIDs(), 1)
}
