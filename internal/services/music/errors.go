package music

// MusicError is a custom error type for music command failures
type MusicError string

// Error implements the error interface
func (e MusicError) Error() string {
	return string(e)
}

const (
	ErrRequesterNotConnected MusicError = "requester is not connected to a voice channel"
	ErrBotNotConnected       MusicError = "bot is not connected to a voice channel"
	ErrCannotConnect         MusicError = "bot cannot connect or speak in the voice channel"
	ErrWrongChannel          MusicError = "requester is in a different voice channel"
	ErrNothingFound          MusicError = "nothing found for the query"
	ErrAlreadyPaused         MusicError = "player is already paused"
	ErrAlreadyResumed        MusicError = "player is not paused"
	ErrInvalidSeekTime       MusicError = "seek time must not be negative"
	ErrInvalidVolume         MusicError = "volume must be between 0 and 100"
	ErrNotDJ                 MusicError = "only the DJ or a channel manager can do this"
	ErrAlreadyVoted          MusicError = "requester already voted to skip"
	ErrInvalidValueIndex     MusicError = "choice is not a number"
	ErrInvalidMusicIndex     MusicError = "choice is out of range"
	ErrCannotRemoveMusic     MusicError = "no queue entry at that position"
	ErrNothingInQueue        MusicError = "queue is empty"
	ErrBotNotPlaying         MusicError = "nothing is playing"
	ErrNoPendingSearch       MusicError = "no pending search for requester"

	ErrNilConfig     MusicError = "config cannot be nil"
	ErrNilNode       MusicError = "voice node cannot be nil"
	ErrNilGateway    MusicError = "voice gateway cannot be nil"
	ErrNilNotifier   MusicError = "notifier cannot be nil"
	ErrNilClock      MusicError = "clock cannot be nil"
	ErrNilUUID       MusicError = "UUID generator cannot be nil"
	ErrNilRandomizer MusicError = "randomizer cannot be nil"
)
