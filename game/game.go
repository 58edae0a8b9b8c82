package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/position"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = fmt.Errorf("%w: game is over", ErrInvalidMove)
)

// Snapshot is a read-only view of a game, safe to hand to presentation code.
type Snapshot struct {
	Grid        [board.Height][board.Width]board.Cell
	Turn        board.Side
	Selected    position.Pos
	HasSelected bool
	LegalMoves  []board.Move
	State       State
	GameOver    *GameOver
}

type MoveResult struct {
	Move        board.Move
	Next        Snapshot
	WasCapture  bool
	Promoted    bool
	ChainForced bool
	GameOver    *GameOver
}

type gameConfig struct {
	fen       string
	id        uuid.UUID
	observers []Observer
	logger    func(...any)
}

type Option func(*gameConfig)

func WithFEN(fen string) Option {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

func WithID(id uuid.UUID) Option {
	return func(cfg *gameConfig) {
		cfg.id = id
	}
}

func WithObserver(o Observer) Option {
	return func(cfg *gameConfig) {
		cfg.observers = append(cfg.observers, o)
	}
}

func WithLogger(logger func(...any)) Option {
	return func(cfg *gameConfig) {
		cfg.logger = logger
	}
}

func discardLogger(...any) {}

// Game owns one board and enforces turn order, mandatory capture and capture chains on it.
// A Game is not safe for concurrent use; callers must serialize Apply calls.
type Game struct {
	id  uuid.UUID
	fen string

	board    *board.Board
	turn     board.Side
	legal    []board.Move
	state    State
	gameOver *GameOver
	history  []board.Move

	// selection is presentation state only, it never affects legality
	selected    position.Pos
	hasSelected bool

	observers []Observer
	logger    func(...any)
}

func NewGame(opts ...Option) (*Game, error) {
	cfg := &gameConfig{
		fen:    board.DefaultStartingPositionFEN,
		logger: discardLogger,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.id == uuid.Nil {
		cfg.id = uuid.New()
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger
	}

	g := &Game{
		id:        cfg.id,
		fen:       cfg.fen,
		observers: cfg.observers,
		logger:    cfg.logger,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset restores the starting layout the game was created with.
func (g *Game) Reset() error {
	b, turn, err := board.NewBoard(board.WithFEN(g.fen))
	if err != nil {
		return err
	}
	g.board = b
	g.turn = turn
	g.history = nil
	g.gameOver = nil
	g.deselect()
	g.beginTurn()
	g.logger("game", g.id, "started:", g.board.FEN(g.turn), g.state)
	return nil
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Turn() board.Side {
	return g.turn
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) GameOver() *GameOver {
	if g.gameOver == nil {
		return nil
	}
	over := *g.gameOver
	return &over
}

// Board returns a copy of the current board.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

func (g *Game) FEN() string {
	return g.board.FEN(g.turn)
}

func (g *Game) Count(s board.Side) uint8 {
	return g.board.Count(s)
}

// LegalMoves returns the moves currently accepted by Apply, already narrowed by the mandatory capture rule
// and by any forced capture chain.
func (g *Game) LegalMoves() []board.Move {
	return append([]board.Move(nil), g.legal...)
}

// FindMove returns the legal move travelling from one square to another.
func (g *Game) FindMove(from, to position.Pos) (board.Move, bool) {
	for _, mv := range g.legal {
		if mv.From == from && mv.To == to {
			return mv, true
		}
	}
	return board.Move{}, false
}

func (g *Game) History() []board.Move {
	return append([]board.Move(nil), g.history...)
}

// Select marks pos as the selected piece if it has a legal move, and clears the selection otherwise.
// Selecting the already selected piece clears the selection. While a capture chain is forced the chain
// piece stays selected.
func (g *Game) Select(pos position.Pos) bool {
	if g.state == StateChainForced {
		return pos == g.selected
	}
	if g.hasSelected && pos == g.selected {
		g.deselect()
		return false
	}
	for _, mv := range g.legal {
		if mv.From == pos {
			g.selected = pos
			g.hasSelected = true
			return true
		}
	}
	g.deselect()
	return false
}

func (g *Game) Selected() (position.Pos, bool) {
	return g.selected, g.hasSelected
}

// SelectedMoves returns the legal moves of the selected piece.
func (g *Game) SelectedMoves() []board.Move {
	if !g.hasSelected {
		return nil
	}
	var mvs []board.Move
	for _, mv := range g.legal {
		if mv.From == g.selected {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

func (g *Game) deselect() {
	g.selected = 0
	g.hasSelected = false
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:        g.board.Grid(),
		Turn:        g.turn,
		Selected:    g.selected,
		HasSelected: g.hasSelected,
		LegalMoves:  g.LegalMoves(),
		State:       g.state,
		GameOver:    g.GameOver(),
	}
}

// Apply plays mv, which must match a legal move by origin and destination. A rejected move leaves the game
// untouched. After a capture the same piece keeps the turn while it can capture again.
func (g *Game) Apply(mv board.Move) (MoveResult, error) {
	if g.state.IsOver() {
		return MoveResult{}, ErrGameOver
	}
	legal, ok := g.FindMove(mv.From, mv.To)
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: %s is not legal for %s", ErrInvalidMove, mv, g.turn)
	}

	mover := g.turn
	promoted := g.board.Apply(legal)
	g.history = append(g.history, legal)
	g.deselect()

	events := []Event{{Kind: EventMoveApplied, Move: legal}}
	if legal.IsCapture {
		events = append(events, Event{Kind: EventCapture, Move: legal, Captured: position.Midpoint(legal.From, legal.To)})
	}
	if promoted {
		events = append(events, Event{Kind: EventPromotion, Move: legal})
	}

	res := MoveResult{
		Move:       legal,
		WasCapture: legal.IsCapture,
		Promoted:   promoted,
	}

	var chain []board.Move
	if legal.IsCapture {
		chain = g.board.GenerateCaptures(legal.To)
	}
	if len(chain) > 0 {
		g.legal = chain
		g.state = StateChainForced
		g.selected = legal.To
		g.hasSelected = true
		res.ChainForced = true
		events = append(events, Event{Kind: EventChainForced, Move: legal, Side: mover})
	} else {
		g.turn = mover.Opposite()
		events = append(events, Event{Kind: EventTurnChanged, Side: g.turn})
		g.beginTurn()
	}

	if g.gameOver != nil {
		res.GameOver = g.GameOver()
		events = append(events, Event{Kind: EventGameOver, GameOver: g.GameOver()})
	}
	res.Next = g.Snapshot()

	g.emit(events)
	return res, nil
}

// beginTurn recomputes the legal moves of the side to move and ends the game if it is stuck or eliminated.
func (g *Game) beginTurn() {
	g.legal = nil
	if g.board.Count(g.turn) == 0 {
		g.finish(g.turn.Opposite(), ReasonNoPieces)
		return
	}
	g.legal = g.board.GenerateTurnMoves(g.turn)
	if len(g.legal) == 0 {
		g.finish(g.turn.Opposite(), ReasonNoMoves)
		return
	}
	g.state = StateRunning
}

func (g *Game) finish(winner board.Side, reason Reason) {
	g.legal = nil
	g.state = stateWonBy(winner)
	g.gameOver = &GameOver{Winner: winner, Reason: reason}
}

func (g *Game) emit(events []Event) {
	for _, e := range events {
		g.logger("game", g.id, e)
		for _, o := range g.observers {
			o.OnEvent(e)
		}
	}
}

// Clone returns an independent copy of the game without its observers.
func (g *Game) Clone() *Game {
	gg := *g
	gg.board = g.board.Clone()
	gg.legal = g.LegalMoves()
	gg.history = g.History()
	gg.gameOver = g.GameOver()
	gg.observers = nil
	gg.logger = discardLogger
	return &gg
}

// DumpHistory renders moves as numbered turns, joining the legs of a capture chain.
func DumpHistory(mvs []board.Move) string {
	builder := strings.Builder{}
	turn := 1
	for i := 0; i < len(mvs); {
		j := i + 1
		for j < len(mvs) && mvs[j].IsSide == mvs[i].IsSide {
			j++
		}
		if i > 0 {
			_, _ = builder.WriteRune(' ')
		}
		switch {
		case mvs[i].IsSide == board.SideBlack:
			_, _ = builder.WriteString(fmt.Sprintf("%d. ", turn))
		case i == 0:
			_, _ = builder.WriteString(fmt.Sprintf("%d... ", turn))
		}
		_, _ = builder.WriteString(mvs[i].Notation())
		for _, leg := range mvs[i+1 : j] {
			_, _ = builder.WriteString("x" + leg.To.Notation())
		}
		if mvs[i].IsSide == board.SideWhite {
			turn++
		}
		i = j
	}
	return builder.String()
}
