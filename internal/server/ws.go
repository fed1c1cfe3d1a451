package server

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"SwipeState/internal/dialogue"
	"SwipeState/internal/game"
	"SwipeState/internal/reputation"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type startDatePayload struct {
	Route string `json:"route"`
	Part  int    `json:"part"`
}

type choicePayload struct {
	Index int `json:"index"`
}

type appearancePayload struct {
	SkinTone   int `json:"skin_tone"`
	EyeStyle   int `json:"eye_style"`
	MouthStyle int `json:"mouth_style"`
	Accessory  int `json:"accessory"`
}

type endingsPayload struct {
	Route string `json:"route"`
}

// session owns one engine per websocket connection. All engine calls happen
// on the read-loop goroutine, which enforces the one-call-at-a-time
// discipline the engine requires.
type session struct {
	id     string
	conn   *websocket.Conn
	engine *game.Engine
	log    *slog.Logger
}

func (s *session) send(msgType string, payload any) {
	if err := s.conn.WriteJSON(outboundMessage{Type: msgType, Payload: payload}); err != nil {
		s.log.Warn("ws write failed", "session", s.id, "type", msgType, "error", err)
	}
}

func (s *session) sendError(message string) {
	s.send("error", errorDTO{Message: message})
}

// sessionObserver forwards engine events to the client as JSON frames.
type sessionObserver struct {
	s *session
}

func (o *sessionObserver) NodeChanged(node *dialogue.Node) {
	o.s.send("node", newNodeDTO(node))
}

func (o *sessionObserver) ChoiceMade(choice dialogue.Choice) {
	o.s.send("choice", choiceDTO{Label: choice.Label})
}

func (o *sessionObserver) LedgerChanged(money, patience int) {
	o.s.send("ledger", newLedgerDTO(o.s.engine.Ledger()))
}

func (o *sessionObserver) Ended(node *dialogue.Node) {
	o.s.send("ended", newNodeDTO(node))
}

func serveWS(routes map[dialogue.RouteType]*dialogue.Graph, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	classifier := reputation.NewClassifier(rng)
	engine := game.NewEngine(routes, classifier, slog.Default())

	sess := &session{
		id:     uuid.NewString(),
		conn:   conn,
		engine: engine,
		log:    slog.Default(),
	}
	cancel := engine.Subscribe(&sessionObserver{s: sess})
	defer cancel()

	sess.log.Info("ws session opened", "session", sess.id)
	sess.send("hello", map[string]string{"session": sess.id})
	sess.send("ledger", newLedgerDTO(engine.Ledger()))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			sess.log.Info("ws session closed", "session", sess.id)
			return
		}
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sess.sendError("malformed message")
			continue
		}
		sess.handle(msg)
	}
}

func (s *session) handle(msg inboundMessage) {
	switch msg.Type {
	case "new_game":
		s.engine.StartNewGame()

	case "appearance":
		var p appearancePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.sendError("malformed appearance payload")
			return
		}
		s.engine.SetAppearance(game.Appearance{
			SkinTone:   p.SkinTone,
			EyeStyle:   p.EyeStyle,
			MouthStyle: p.MouthStyle,
			Accessory:  p.Accessory,
		})

	case "start_date":
		var p startDatePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.sendError("malformed start_date payload")
			return
		}
		route := dialogue.ParseRouteType(p.Route)
		if route == dialogue.RouteNone {
			s.sendError("unknown route: " + p.Route)
			return
		}
		led := s.engine.Ledger()
		if !led.PartUnlocked(p.Part) {
			s.sendError("part not unlocked")
			return
		}
		if err := s.engine.StartRun(route, p.Part); err != nil {
			s.sendError(err.Error())
		}

	case "choice":
		var p choicePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.sendError("malformed choice payload")
			return
		}
		// Content errors halt traversal; out-of-range indices are dropped
		// by the engine without an error.
		if err := s.engine.MakeChoice(p.Index); err != nil {
			s.sendError(err.Error())
		}

	case "endings":
		var p endingsPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.sendError("malformed endings payload")
			return
		}
		graph, ok := s.engine.Route(dialogue.ParseRouteType(p.Route))
		if !ok {
			s.sendError(dialogue.ErrRouteNotFound.Error() + ": " + p.Route)
			return
		}
		var endings []nodeDTO
		for node := range graph.Endings() {
			endings = append(endings, newNodeDTO(node))
		}
		s.send("endings", endings)

	default:
		s.sendError("unknown message type: " + msg.Type)
	}
}
