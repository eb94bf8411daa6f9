package services

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/hardware"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

// Game tuning, matching the physical build: 30 seconds per round, 5 seconds
// per fish, three countdown steps of one second each.
const (
	RoundDuration = 30 * time.Second
	FishDuration  = 5 * time.Second

	countdownFrom = 3
	countdownStep = time.Second
)

// Sender transmits one command to the receiver board, fire-and-forget.
// A lost datagram just means the board keeps its last LED pattern.
type Sender interface {
	Send(cmd models.Command)
}

// GameService owns the controller state machine. All state lives here and
// transitions are the only mutation path; buttons, sensors and the tick
// loop feed in events, commands and display updates flow out.
//
// Every public method takes the current time explicitly so the tick loop
// and the tests drive the same code path.
type GameService struct {
	mu sync.Mutex

	state   models.GameState
	score   int
	active  int // lit position 1..NumPositions, 0 when none
	roundID string

	countdownLeft int
	nextStepAt    time.Time
	roundEndsAt   time.Time
	fishEndsAt    time.Time
	shownSecond   int

	tx        Sender
	timeDisp  hardware.Display
	scoreDisp hardware.Display
	pick      func(n int) int

	onChange func(snap models.Snapshot)
	onFinish func(roundID string, score int)

	dirty    bool
	finished bool
}

// NewGameService wires the command sender and the two displays and starts
// in the ready screen.
func NewGameService(tx Sender, timeDisp, scoreDisp hardware.Display) *GameService {
	s := &GameService{
		tx:        tx,
		timeDisp:  timeDisp,
		scoreDisp: scoreDisp,
		pick:      rand.Intn,
	}
	s.resetLocked()
	return s
}

// SetChangeFunc registers the snapshot listener (the WebSocket hub).
func (s *GameService) SetChangeFunc(fn func(snap models.Snapshot)) {
	s.onChange = fn
}

// SetFinishFunc registers the finished-round listener (the leaderboard).
func (s *GameService) SetFinishFunc(fn func(roundID string, score int)) {
	s.onFinish = fn
}

// SetPickFunc overrides the random position source. Tests use this to make
// fish selection deterministic.
func (s *GameService) SetPickFunc(fn func(n int) int) {
	s.pick = fn
}

// Start handles a Start button edge. It only acts in the idle state: during
// a round it is ignored, and in game over only Reset brings the game back.
func (s *GameService) Start(now time.Time) bool {
	s.mu.Lock()
	s.advanceLocked(now)

	if s.state != models.StateIdle {
		s.finishLocked(now)
		return false
	}

	s.state = models.StateCountdown
	s.score = 0
	s.active = 0
	s.roundID = uuid.NewString()
	s.countdownLeft = countdownFrom
	s.nextStepAt = now.Add(countdownStep)

	s.tx.Send(models.All)
	s.timeDisp.ShowNumber(s.countdownLeft)
	s.scoreDisp.ShowNumber(s.countdownLeft)
	s.dirty = true

	log.Printf("🎣 Round %s: countdown started", s.roundID)
	s.finishLocked(now)
	return true
}

// Reset handles a Reset button edge: a hard override back to idle from any
// state. Sending Off is idempotent.
func (s *GameService) Reset(now time.Time) {
	s.mu.Lock()
	s.resetLocked()
	s.dirty = true
	log.Println("--- READY ---")
	s.finishLocked(now)
}

// Trigger handles a sensor rising edge (or an injected catch) on the given
// position. Outside the playing state, or on a non-matching position, it
// has no effect.
func (s *GameService) Trigger(pos int, now time.Time) {
	s.mu.Lock()
	s.advanceLocked(now)

	if s.state != models.StatePlaying || pos != s.active {
		s.finishLocked(now)
		return
	}

	// Catch: count it and move the fish before its window runs out.
	s.score++
	s.scoreDisp.ShowNumber(s.score)
	s.spawnLocked(now)
	s.dirty = true
	log.Printf("🐟 Caught fish #%d, score %d", pos, s.score)

	s.finishLocked(now)
}

// Tick advances the countdown and the two round timers, then refreshes the
// time display. The main loop calls it every polling interval.
func (s *GameService) Tick(now time.Time) {
	s.mu.Lock()
	s.advanceLocked(now)

	if s.state == models.StatePlaying {
		left := s.roundEndsAt.Sub(now)
		if left < 0 {
			left = 0
		}
		if sec := int(left / time.Second); sec != s.shownSecond {
			s.shownSecond = sec
			s.timeDisp.ShowClock(0, sec)
		}
	}

	s.finishLocked(now)
}

// Snapshot returns the current public view of the game.
func (s *GameService) Snapshot(now time.Time) models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(now)
}

// advanceLocked processes every timer deadline that has elapsed up to now.
// Deadlines are handled at their exact boundary times so the round lasts
// exactly RoundDuration and each fish window exactly FishDuration, however
// late the tick arrives.
func (s *GameService) advanceLocked(now time.Time) {
	for s.state == models.StateCountdown && !now.Before(s.nextStepAt) {
		boundary := s.nextStepAt
		s.countdownLeft--
		if s.countdownLeft > 0 {
			s.tx.Send(models.All)
			s.timeDisp.ShowNumber(s.countdownLeft)
			s.scoreDisp.ShowNumber(s.countdownLeft)
			s.nextStepAt = boundary.Add(countdownStep)
			s.dirty = true
		} else {
			s.beginPlayingLocked(boundary)
		}
	}

	for s.state == models.StatePlaying {
		// The round timer wins over the fish timer when both have elapsed.
		if !now.Before(s.roundEndsAt) {
			s.endRoundLocked()
			break
		}
		if now.Before(s.fishEndsAt) {
			break
		}
		// Escape: the fish got away, move it without scoring.
		boundary := s.fishEndsAt
		s.tx.Send(models.Off)
		log.Printf("💨 Fish #%d escaped", s.active)
		s.spawnLocked(boundary)
		s.dirty = true
	}
}

func (s *GameService) beginPlayingLocked(now time.Time) {
	s.state = models.StatePlaying
	s.roundEndsAt = now.Add(RoundDuration)
	s.shownSecond = int(RoundDuration / time.Second)
	s.timeDisp.ShowClock(0, s.shownSecond)
	s.scoreDisp.ShowNumber(s.score)
	s.spawnLocked(now)
	s.dirty = true
	log.Println("!!! GO !!!")
}

// spawnLocked picks the next lit position, never repeating the current one,
// restarts the fish window from the given instant and announces the fish.
func (s *GameService) spawnLocked(from time.Time) {
	var next int
	if s.active == 0 {
		next = s.pick(models.NumPositions) + 1
	} else {
		next = s.pick(models.NumPositions-1) + 1
		if next >= s.active {
			next++
		}
	}
	s.active = next
	s.fishEndsAt = from.Add(FishDuration)
	s.tx.Send(models.SelectPosition(next))
}

func (s *GameService) endRoundLocked() {
	s.state = models.StateGameOver
	s.active = 0
	s.tx.Send(models.Off)
	s.timeDisp.ShowText("End ")
	s.scoreDisp.ShowNumber(s.score)
	s.dirty = true
	s.finished = true
	log.Printf("🏁 GAME OVER. Round %s scored %d", s.roundID, s.score)
}

func (s *GameService) resetLocked() {
	s.state = models.StateIdle
	s.score = 0
	s.active = 0
	s.roundID = ""
	s.tx.Send(models.Off)
	s.timeDisp.ShowClock(0, 0)
	s.scoreDisp.ShowText("Strt")
}

func (s *GameService) snapshotLocked(now time.Time) models.Snapshot {
	snap := models.Snapshot{
		RoundID:        s.roundID,
		State:          s.state,
		Score:          s.score,
		ActivePosition: s.active,
		Timestamp:      now,
	}
	if s.state == models.StateCountdown {
		snap.Countdown = s.countdownLeft
	}
	if s.state == models.StatePlaying {
		if left := s.roundEndsAt.Sub(now); left > 0 {
			snap.TimeLeft = int(left / time.Second)
		}
	}
	return snap
}

// finishLocked publishes pending notifications after releasing the lock, so
// slow listeners (Redis, the hub) never stall the tick loop.
func (s *GameService) finishLocked(now time.Time) {
	var snap models.Snapshot
	notify := s.dirty
	if notify {
		snap = s.snapshotLocked(now)
		s.dirty = false
	}
	finished := s.finished
	roundID, score := s.roundID, s.score
	s.finished = false
	s.mu.Unlock()

	if notify && s.onChange != nil {
		s.onChange(snap)
	}
	if finished && s.onFinish != nil {
		s.onFinish(roundID, score)
	}
}
