package web

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 25 * time.Second
	maxMessage   = 4096
	sendBuffer   = 64
	actorBuffer  = 64
	scoresOnWire = 10
)

// session is one browser connection playing its own round.
// The controller is only touched on the actor goroutine.
type session struct {
	conn   *websocket.Conn
	actor  *catch.Actor
	sched  *catch.TickerScheduler
	ctrl   *catch.Controller
	send   chan ServerMessage
	store  *storage.Store
	player string
	logger *log.Logger
}

func newSession(conn *websocket.Conn, game config.CatchConfig, seed int64, store *storage.Store, player string, logger *log.Logger) *session {
	game.Normalize()

	s := &session{
		conn:   conn,
		actor:  catch.NewActor(actorBuffer),
		send:   make(chan ServerMessage, sendBuffer),
		store:  store,
		player: player,
		logger: logger,
	}
	s.sched = catch.NewTickerScheduler(game.Round.LoopInterval(), game.Round.ClockInterval(), s.actor.Post)
	s.ctrl = catch.NewController(catch.RulesFromConfig(game), rand.New(rand.NewSource(seed)), s.sched)
	s.ctrl.Subscribe(s.onEvent)
	return s
}

// run serves the connection until the browser leaves or ctx ends.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.actor.Run(ctx)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeLoop(ctx)
	}()

	s.readLoop()

	cancel()
	s.sched.Stop()
	<-writerDone
}

// readLoop decodes client messages and hands them to the actor.
func (s *session) readLoop() {
	s.conn.SetReadLimit(maxMessage)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read failed", "error", err)
			}
			return
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))

		if !s.actor.Post(func() { s.apply(msg) }) {
			return
		}
	}
}

// writeLoop is the only writer on the connection.
func (s *session) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			// Unblocks readLoop when the server shuts down
			s.conn.Close()
			return

		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(msg); err != nil {
				s.logger.Warn("write failed", "error", err)
				s.conn.Close()
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.conn.Close()
				return
			}
		}
	}
}

// apply runs on the actor goroutine.
func (s *session) apply(msg ClientMessage) {
	switch msg.Type {
	case MsgLayout:
		if (core.Size{W: msg.Width, H: msg.Height}).Empty() {
			s.push(ServerMessage{Type: MsgError, Error: "layout needs a positive width and height"})
			return
		}
		// A running round keeps its area
		if s.ctrl.Lifecycle() != catch.Running {
			s.ctrl.Layout(msg.Width, msg.Height)
		}
	case MsgBasket:
		s.ctrl.MoveBasket(msg.X)
	case MsgFocus:
		if msg.Foreground != nil {
			s.ctrl.SetForeground(*msg.Foreground)
		}
	case MsgStart:
		s.ctrl.Start()
		s.logger.Debug("round started", "player", s.player)
	case MsgScores:
		s.pushScores()
	default:
		s.push(ServerMessage{Type: MsgError, Error: fmt.Sprintf("unknown message type %q", msg.Type)})
	}
}

// onEvent runs on the actor goroutine after every controller mutation.
func (s *session) onEvent(ev catch.Event) {
	switch ev.Kind {
	case catch.EventCaught, catch.EventSpawned:
		// Covered by the Ticked event that follows
		return
	case catch.EventEnded:
		snap := s.ctrl.Snapshot()
		s.push(ServerMessage{Type: MsgState, State: &snap})
		s.saveRound(snap)
		s.pushScores()
		return
	}

	snap := s.ctrl.Snapshot()
	s.push(ServerMessage{Type: MsgState, State: &snap})
}

// push queues msg for the writer. Frames are dropped when the browser
// falls behind; the next snapshot supersedes them anyway.
func (s *session) push(msg ServerMessage) {
	select {
	case s.send <- msg:
	default:
		s.logger.Debug("dropped frame", "type", msg.Type, "player", s.player)
	}
}

func (s *session) saveRound(snap catch.Snapshot) {
	s.logger.Info("round ended", "player", s.player, "score", snap.Score)
	if s.store == nil {
		return
	}

	if _, err := s.store.SaveRound(storage.RoundResult{
		Player:    s.player,
		Host:      "web",
		Score:     snap.Score,
		Catches:   snap.Catches,
		Penalties: snap.Penalties,
		Dropped:   snap.Dropped,
	}); err != nil {
		// Best-effort save, the game continues regardless
		s.logger.Warn("could not save round", "error", err)
	}
}

func (s *session) pushScores() {
	msg := ServerMessage{Type: MsgScores, Scores: []storage.RoundResult{}}
	if s.store != nil {
		rounds, err := s.store.TopRounds(scoresOnWire)
		if err != nil {
			s.logger.Warn("could not load scores", "error", err)
		} else if rounds != nil {
			msg.Scores = rounds
		}
	}
	s.push(msg)
}
