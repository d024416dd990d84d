package music

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/common/random"
	"github.com/KirkDiggler/pearl/internal/common/uuid"
	"github.com/KirkDiggler/pearl/internal/models"
	sessionRepo "github.com/KirkDiggler/pearl/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	idleTimeout   time.Duration
	voteRatio     float64
	searchTimeout time.Duration
	searchLimit   int

	node        VoiceNode
	gateway     VoiceGateway
	notifier    Notifier
	sessionRepo sessionRepo.Repository

	clock         clock.Clock
	uuidGenerator uuid.UUID
	randomizer    random.Randomizer
	logger        *slog.Logger

	players *registry

	searchMu sync.Mutex
	searches map[searchKey]*pendingSearch
}

type searchKey struct {
	guildID string
	userID  string
}

type pendingSearch struct {
	results   []models.Track
	expiresAt time.Time
}

// New creates a new music service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Node == nil {
		return nil, ErrNilNode
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	if cfg.Randomizer == nil {
		return nil, ErrNilRandomizer
	}

	s := &service{
		idleTimeout:   cfg.IdleTimeout,
		voteRatio:     cfg.VoteRatio,
		searchTimeout: cfg.SearchTimeout,
		searchLimit:   cfg.SearchLimit,
		node:          cfg.Node,
		gateway:       cfg.Gateway,
		notifier:      cfg.Notifier,
		sessionRepo:   cfg.SessionRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		randomizer:    cfg.Randomizer,
		logger:        cfg.Logger,
		players:       newRegistry(),
		searches:      make(map[searchKey]*pendingSearch),
	}

	if s.idleTimeout <= 0 {
		s.idleTimeout = DefaultIdleTimeout
	}
	if s.voteRatio <= 0 || s.voteRatio > 1 {
		s.voteRatio = DefaultVoteRatio
	}
	if s.searchTimeout <= 0 {
		s.searchTimeout = DefaultSearchTimeout
	}
	if s.searchLimit <= 0 {
		s.searchLimit = DefaultSearchLimit
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

// ensureVoice checks the requester can use the session and, when allowed,
// creates it and asks the gateway to join the requester's channel
func (s *service) ensureVoice(ctx context.Context, p *guildPlayer, req Requester, mayConnect, canConnect bool) error {
	if req.VoiceChannelID == "" {
		return ErrRequesterNotConnected
	}

	if p == nil || p.session == nil {
		if !mayConnect || p == nil {
			return ErrBotNotConnected
		}

		if !canConnect {
			return ErrCannotConnect
		}

		now := s.clock.Now()
		p.session = &models.MusicSession{
			ID:             s.uuidGenerator.NewUUID(),
			GuildID:        req.GuildID,
			VoiceChannelID: req.VoiceChannelID,
			TextChannelID:  req.TextChannelID,
			DJID:           req.UserID,
			State:          models.SessionStateConnecting,
			Volume:         DefaultVolume,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		p.voice = voiceCredentials{}

		if err := s.gateway.JoinChannel(ctx, req.GuildID, req.VoiceChannelID); err != nil {
			p.session = nil
			return fmt.Errorf("failed to join voice channel: %w", err)
		}

		s.logger.InfoContext(ctx, "music session created",
			"guild_id", req.GuildID,
			"channel_id", req.VoiceChannelID,
			"dj_id", req.UserID,
		)
		return nil
	}

	if p.session.VoiceChannelID != req.VoiceChannelID {
		return ErrWrongChannel
	}

	return nil
}

// connected acquires an existing session for commands that never connect.
// On success the caller must release the returned player.
func (s *service) connected(ctx context.Context, req Requester) (*guildPlayer, error) {
	p := s.players.acquire(req.GuildID, false)
	if err := s.ensureVoice(ctx, p, req, false, false); err != nil {
		if p != nil {
			s.players.release(p)
		}
		return nil, err
	}
	return p, nil
}

func isPrivileged(session *models.MusicSession, req Requester) bool {
	return req.Privileged || session.DJID == req.UserID
}

// buildQuery turns free text into a search, URLs are passed through
func buildQuery(query string) string {
	query = strings.Trim(strings.TrimSpace(query), "<>")

	u, err := url.Parse(query)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return query
	}

	return "ytsearch:" + query
}

func (s *service) newEntry(track models.Track, requesterID string) models.QueueEntry {
	return models.QueueEntry{
		ID:          s.uuidGenerator.NewUUID(),
		Track:       track,
		RequesterID: requesterID,
		EnqueuedAt:  s.clock.Now(),
	}
}

// Play resolves a query and appends the result to the guild queue
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	p := s.players.acquire(input.GuildID, true)
	defer s.players.release(p)

	if err := s.ensureVoice(ctx, p, input.Requester, true, input.CanConnect); err != nil {
		return nil, err
	}
	defer s.persist(ctx, p)

	result, err := s.node.LoadTracks(ctx, buildQuery(input.Query))
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks: %w", err)
	}

	if result == nil || len(result.Tracks) == 0 ||
		result.Type == models.LoadTypeEmpty || result.Type == models.LoadTypeError {
		return nil, ErrNothingFound
	}

	tracks := result.Tracks[:1]
	if result.Type == models.LoadTypePlaylist {
		tracks = result.Tracks
	}

	output := &PlayOutput{
		PlaylistName: result.PlaylistName,
	}
	for _, track := range tracks {
		entry := s.newEntry(track, input.UserID)
		p.session.Queue = append(p.session.Queue, entry)
		output.Added = append(output.Added, entry)
		output.Duration += track.Length
	}

	started, err := s.startIfIdle(ctx, p)
	if err != nil {
		return nil, err
	}
	output.Started = started

	return output, nil
}

// startIfIdle starts the queue when the session is connected and silent
func (s *service) startIfIdle(ctx context.Context, p *guildPlayer) (bool, error) {
	if p.session.State == models.SessionStateConnecting || p.session.IsPlaying() {
		return false, nil
	}

	if err := s.startNext(ctx, p); err != nil {
		return false, err
	}
	return p.session.IsPlaying(), nil
}

// Search lists results for a query and keeps them for the requester to pick from
func (s *service) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	p := s.players.acquire(input.GuildID, true)
	defer s.players.release(p)

	if err := s.ensureVoice(ctx, p, input.Requester, true, input.CanConnect); err != nil {
		return nil, err
	}
	defer s.persist(ctx, p)

	result, err := s.node.LoadTracks(ctx, buildQuery(input.Query))
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks: %w", err)
	}

	if result == nil || len(result.Tracks) == 0 ||
		result.Type == models.LoadTypeEmpty || result.Type == models.LoadTypeError {
		return nil, ErrNothingFound
	}

	results := result.Tracks
	if len(results) > s.searchLimit {
		results = results[:s.searchLimit]
	}

	expiresAt := s.clock.Now().Add(s.searchTimeout)

	s.searchMu.Lock()
	s.searches[searchKey{guildID: input.GuildID, userID: input.UserID}] = &pendingSearch{
		results:   results,
		expiresAt: expiresAt,
	}
	s.searchMu.Unlock()

	return &SearchOutput{
		Results:   results,
		ExpiresAt: expiresAt,
	}, nil
}

// takeSearch removes and returns the requester's pending search if it has not expired
func (s *service) takeSearch(guildID, userID string) *pendingSearch {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()

	key := searchKey{guildID: guildID, userID: userID}
	pending, ok := s.searches[key]
	if !ok {
		return nil
	}
	delete(s.searches, key)

	if !s.clock.Now().Before(pending.expiresAt) {
		return nil
	}
	return pending
}

func (s *service) HasPendingSearch(guildID, userID string) bool {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()

	key := searchKey{guildID: guildID, userID: userID}
	pending, ok := s.searches[key]
	if !ok {
		return false
	}

	if !s.clock.Now().Before(pending.expiresAt) {
		delete(s.searches, key)
		return false
	}
	return true
}

// Pick resolves the requester's pending search
func (s *service) Pick(ctx context.Context, input *PickInput) (*PickOutput, error) {
	pending := s.takeSearch(input.GuildID, input.UserID)
	if pending == nil {
		return nil, ErrNoPendingSearch
	}

	choice := strings.TrimSpace(input.Choice)
	if strings.EqualFold(choice, "cancel") {
		return &PickOutput{Cancelled: true}, nil
	}

	index, err := strconv.Atoi(choice)
	if err != nil {
		return nil, ErrInvalidValueIndex
	}

	if index < 1 || index > len(pending.results) {
		return nil, ErrInvalidMusicIndex
	}

	p := s.players.acquire(input.GuildID, true)
	defer s.players.release(p)

	if err := s.ensureVoice(ctx, p, input.Requester, true, input.CanConnect); err != nil {
		return nil, err
	}
	defer s.persist(ctx, p)

	entry := s.newEntry(pending.results[index-1], input.UserID)
	p.session.Queue = append(p.session.Queue, entry)

	started, err := s.startIfIdle(ctx, p)
	if err != nil {
		return nil, err
	}

	return &PickOutput{
		Added:   &entry,
		Started: started,
	}, nil
}

// Remove deletes the entry at a 1-based queue position
func (s *service) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	if !isPrivileged(p.session, input.Requester) {
		return nil, ErrNotDJ
	}

	removed, ok := removeAt(&p.session.Queue, input.Index)
	if !ok {
		return nil, ErrCannotRemoveMusic
	}
	s.persist(ctx, p)

	return &RemoveOutput{
		Removed: removed,
	}, nil
}

// removeAt deletes the entry at a 1-based position, keeping the order of the rest
func removeAt(queue *[]models.QueueEntry, index int) (models.QueueEntry, bool) {
	q := *queue
	if index <= 0 || index > len(q) {
		return models.QueueEntry{}, false
	}

	removed := q[index-1]
	*queue = append(q[:index-1:index-1], q[index:]...)
	return removed, true
}

// Shuffle randomly reorders the queue
func (s *service) Shuffle(ctx context.Context, input *ShuffleInput) (*ShuffleOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	queue := p.session.Queue
	s.randomizer.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	s.persist(ctx, p)

	return &ShuffleOutput{
		Count: len(queue),
	}, nil
}

// LoopQueue toggles re-appending finished tracks to the queue
func (s *service) LoopQueue(ctx context.Context, input *LoopQueueInput) (*LoopQueueOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	p.session.Repeat = !p.session.Repeat
	s.persist(ctx, p)

	return &LoopQueueOutput{
		Repeat: p.session.Repeat,
	}, nil
}

// Clear empties the queue
func (s *service) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	if !isPrivileged(p.session, input.Requester) {
		return nil, ErrNotDJ
	}

	removed := len(p.session.Queue)
	if removed == 0 {
		return nil, ErrNothingInQueue
	}

	p.session.Queue = nil
	s.persist(ctx, p)

	return &ClearOutput{
		Removed: removed,
	}, nil
}

// Queue returns one page of the queue
func (s *service) Queue(ctx context.Context, input *QueueInput) (*QueueOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	queue := p.session.Queue
	total := len(queue)

	pages := (total + QueuePageSize - 1) / QueuePageSize
	if pages < 1 {
		pages = 1
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * QueuePageSize
	end := start + QueuePageSize
	if end > total {
		end = total
	}

	entries := make([]models.QueueEntry, end-start)
	copy(entries, queue[start:end])

	var current *models.QueueEntry
	if p.session.Current != nil {
		c := *p.session.Current
		current = &c
	}

	return &QueueOutput{
		Current:  current,
		Entries:  entries,
		Page:     page,
		Pages:    pages,
		Total:    total,
		Duration: p.session.QueueDuration(),
		Offset:   start,
		Repeat:   p.session.Repeat,
	}, nil
}

// NowPlaying describes the current track and its progress
func (s *service) NowPlaying(ctx context.Context, input *NowPlayingInput) (*NowPlayingOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	if !p.session.IsPlaying() {
		return nil, ErrBotNotPlaying
	}

	entry := *p.session.Current

	return &NowPlayingOutput{
		Entry:    entry,
		Position: p.session.Position,
		Paused:   p.session.Paused,
		Bar:      ProgressBar(p.session.Position, entry.Track.Length, ProgressBarSize),
	}, nil
}

// ProgressBar draws size cells with a marker at the played fraction
func ProgressBar(position, length time.Duration, size int) string {
	if size < 1 {
		return ""
	}

	cell := 0
	if length > 0 && position > 0 {
		cell = int(int64(size) * int64(position) / int64(length))
	}
	if cell >= size {
		cell = size - 1
	}

	return strings.Repeat("▬", cell) + "○" + strings.Repeat("▬", size-cell-1)
}

// Pause pauses playback
func (s *service) Pause(ctx context.Context, input *PauseInput) (*PauseOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	if p.session.Paused {
		return nil, ErrAlreadyPaused
	}

	if !isPrivileged(p.session, input.Requester) {
		return nil, ErrNotDJ
	}

	if err := s.node.Pause(ctx, input.GuildID, true); err != nil {
		return nil, fmt.Errorf("failed to pause: %w", err)
	}

	p.session.Paused = true
	s.persist(ctx, p)

	return &PauseOutput{}, nil
}

// Resume resumes paused playback
func (s *service) Resume(ctx context.Context, input *ResumeInput) (*ResumeOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	if !p.session.Paused {
		return nil, ErrAlreadyResumed
	}

	if !isPrivileged(p.session, input.Requester) {
		return nil, ErrNotDJ
	}

	if err := s.node.Pause(ctx, input.GuildID, false); err != nil {
		return nil, fmt.Errorf("failed to resume: %w", err)
	}

	p.session.Paused = false
	s.persist(ctx, p)

	return &ResumeOutput{}, nil
}

// Seek moves playback of the current track to a position
func (s *service) Seek(ctx context.Context, input *SeekInput) (*SeekOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	if input.Seconds < 0 {
		return nil, ErrInvalidSeekTime
	}

	if !isPrivileged(p.session, input.Requester) {
		return nil, ErrNotDJ
	}

	if !p.session.IsPlaying() {
		return nil, ErrBotNotPlaying
	}

	position := time.Duration(input.Seconds) * time.Second
	if err := s.node.Seek(ctx, input.GuildID, position); err != nil {
		return nil, fmt.Errorf("failed to seek: %w", err)
	}

	p.session.Position = position
	s.persist(ctx, p)

	return &SeekOutput{
		Position: position,
	}, nil
}

// Volume sets the player volume in percent
func (s *service) Volume(ctx context.Context, input *VolumeInput) (*VolumeOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	if input.Volume < 0 || input.Volume > 100 {
		return nil, ErrInvalidVolume
	}

	if err := s.node.SetVolume(ctx, input.GuildID, input.Volume); err != nil {
		return nil, fmt.Errorf("failed to set volume: %w", err)
	}

	p.session.Volume = input.Volume
	s.persist(ctx, p)

	return &VolumeOutput{
		Volume: input.Volume,
	}, nil
}

// Disconnect stops playback and leaves the voice channel
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	if !isPrivileged(p.session, input.Requester) {
		return nil, ErrNotDJ
	}

	p.session.Queue = nil
	if p.session.IsPlaying() {
		if err := s.node.Stop(ctx, input.GuildID); err != nil {
			s.logger.WarnContext(ctx, "failed to stop player", "guild_id", input.GuildID, "error", err)
		}
		p.session.Current = nil
	}

	s.teardown(ctx, p, true)

	return &DisconnectOutput{}, nil
}

// ResetSessions drops snapshots left behind by a previous process
func (s *service) ResetSessions(ctx context.Context) (int, error) {
	if s.sessionRepo == nil {
		return 0, nil
	}

	out, err := s.sessionRepo.PurgeSessions(ctx, &sessionRepo.PurgeSessionsInput{})
	if err != nil {
		return 0, fmt.Errorf("failed to reset sessions: %w", err)
	}
	return out.Removed, nil
}

// Shutdown leaves every voice channel and forgets all sessions
func (s *service) Shutdown(ctx context.Context) error {
	for _, guildID := range s.players.guildIDs() {
		p := s.players.acquire(guildID, false)
		if p == nil {
			continue
		}
		if p.session != nil {
			s.teardown(ctx, p, true)
		}
		s.players.release(p)
	}
	return nil
}

// persist writes the session snapshot, failures are logged and ignored
func (s *service) persist(ctx context.Context, p *guildPlayer) {
	if s.sessionRepo == nil || p.session == nil || p.removed {
		return
	}

	p.session.UpdatedAt = s.clock.Now()
	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: p.session,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to save session snapshot",
			"guild_id", p.guildID,
			"error", err,
		)
	}
}
