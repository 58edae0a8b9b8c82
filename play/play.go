package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/game"
	"github.com/daystram/checkers/position"
)

var (
	ErrInvalidCommand = errors.New("invalid command")

	moveSeparators = strings.NewReplacer("-", " ", "x", " ", "X", " ")
)

const helpText = `commands:
  <from> <to>     play a move, e.g. "B6 A5", "b6-a5" or "d4xf2"
  select <sq>     select a piece and show its moves
  moves           list legal moves
  d               draw the board
  fen             print the layout
  history         print the moves played
  score           print piece counts
  new             start a new game
  quit            exit`

type options struct {
	fen    string
	color  bool
	logger func(...any)
}

type Option func(*options)

func WithFEN(fen string) Option {
	return func(o *options) {
		o.fen = fen
	}
}

func WithColor(color bool) Option {
	return func(o *options) {
		o.color = color
	}
}

func WithLogger(logger func(...any)) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Interface is a line-oriented text front end for one game.
type Interface struct {
	game    *game.Game
	in      io.Reader
	out     io.Writer
	options options
}

func NewInterface(in io.Reader, out io.Writer, opts ...Option) (*Interface, error) {
	i := &Interface{
		in:  in,
		out: out,
		options: options{
			fen:   board.DefaultStartingPositionFEN,
			color: true,
		},
	}
	for _, f := range opts {
		f(&i.options)
	}

	gameOpts := []game.Option{
		game.WithFEN(i.options.fen),
		game.WithObserver(game.ObserverFunc(i.onEvent)),
	}
	if i.options.logger != nil {
		gameOpts = append(gameOpts, game.WithLogger(i.options.logger))
	}
	g, err := game.NewGame(gameOpts...)
	if err != nil {
		return nil, err
	}
	i.game = g
	return i, nil
}

func (i *Interface) Game() *game.Game {
	return i.game
}

func (i *Interface) Run(ctx context.Context) error {
	i.commandDraw(ctx)
	i.printStatus()

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch args := strings.Fields(cmd); strings.ToLower(args[0]) {
		case "quit", "exit":
			return nil
		case "help", "?":
			i.println(helpText)
		case "select", "s":
			i.commandSelect(ctx, args[1:])
		case "moves":
			i.commandMoves(ctx)
		case "d", "board":
			i.commandDraw(ctx)
		case "fen":
			i.println(i.game.FEN())
		case "history":
			i.println(game.DumpHistory(i.game.History()))
		case "score":
			i.commandScore(ctx)
		case "new":
			i.commandNew(ctx)
		default:
			i.commandMove(ctx, cmd)
		}
	}
	return scanner.Err()
}

func (i *Interface) commandSelect(ctx context.Context, args []string) {
	if len(args) != 1 {
		i.printError(fmt.Errorf("%w: select takes one square", ErrInvalidCommand))
		return
	}
	pos, err := position.NewPosFromNotation(args[0])
	if err != nil {
		i.printError(err)
		return
	}
	prev, hadSelected := i.game.Selected()
	if !i.game.Select(pos) {
		if hadSelected && prev == pos {
			i.commandDraw(ctx)
			i.println(pos, "deselected")
			return
		}
		i.printError(fmt.Errorf("%w: %s has no legal move", game.ErrInvalidMove, pos))
		return
	}
	i.commandDraw(ctx)
	i.println(joinMoves(i.game.SelectedMoves()))
}

func (i *Interface) commandMoves(_ context.Context) {
	i.println(joinMoves(i.game.LegalMoves()))
}

func (i *Interface) commandDraw(_ context.Context) {
	if !i.options.color {
		i.println(i.game.Board().Dump())
		return
	}
	var highlight []position.Pos
	if sel, ok := i.game.Selected(); ok {
		highlight = append(highlight, sel)
		for _, mv := range i.game.SelectedMoves() {
			highlight = append(highlight, mv.To)
		}
	}
	i.println(i.game.Board().Draw(highlight...))
}

func (i *Interface) commandScore(_ context.Context) {
	i.println(fmt.Sprintf("%s: %d - %s: %d",
		board.SideBlack, i.game.Count(board.SideBlack), board.SideWhite, i.game.Count(board.SideWhite)))
}

func (i *Interface) commandNew(ctx context.Context) {
	if err := i.game.Reset(); err != nil {
		i.printError(err)
		return
	}
	i.commandDraw(ctx)
	i.printStatus()
}

func (i *Interface) commandMove(ctx context.Context, cmd string) {
	from, to, err := parseMove(cmd)
	if err != nil {
		i.printError(err)
		return
	}
	res, err := i.game.Apply(board.Move{From: from, To: to})
	if err != nil {
		i.printError(err)
		return
	}
	i.commandDraw(ctx)
	if res.GameOver == nil {
		i.printStatus()
	}
}

func (i *Interface) onEvent(e game.Event) {
	switch e.Kind {
	case game.EventCapture, game.EventPromotion, game.EventChainForced, game.EventGameOver:
		i.println("> " + e.String())
	}
}

func (i *Interface) printStatus() {
	if over := i.game.GameOver(); over != nil {
		i.println(over.String())
		return
	}
	status := fmt.Sprintf("%s to move", i.game.Turn())
	if i.game.State() == game.StateChainForced {
		sel, _ := i.game.Selected()
		status += fmt.Sprintf(", continue capturing with %s", sel)
	}
	i.println(status)
}

func (i *Interface) printError(err error) {
	i.println("error:", err)
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

// parseMove accepts two squares separated by whitespace, '-' or 'x'.
func parseMove(cmd string) (position.Pos, position.Pos, error) {
	fields := strings.Fields(moveSeparators.Replace(cmd))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCommand, cmd)
	}
	from, err := position.NewPosFromNotation(fields[0])
	if err != nil {
		return 0, 0, err
	}
	to, err := position.NewPosFromNotation(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func joinMoves(mvs []board.Move) string {
	s := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		s = append(s, mv.Notation())
	}
	return strings.Join(s, " ")
}
