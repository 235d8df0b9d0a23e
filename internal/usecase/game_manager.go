package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/rocketscienceinc/gridgames/internal/game"
	"github.com/rocketscienceinc/gridgames/internal/notation"
	"github.com/rocketscienceinc/gridgames/internal/pkg"
	"github.com/rocketscienceinc/gridgames/internal/render"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, gameInstance *game.Game) error
	DeleteByID(ctx context.Context, id string) error
}

// GameManager drives console games of one variant: prompting, validating,
// applying moves and offering rematches.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	renderer *render.Renderer
	variant  game.Variant
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, renderer *render.Renderer, variant game.Variant) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager", "variant", variant.Name),

		gameRepo: gameRepo,
		renderer: renderer,
		variant:  variant,
	}
}

// Run plays games on in/out until the players decline a rematch.
// It returns apperror.ErrInputClosed when in runs dry.
func (that *GameManager) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	term := newConsole(in, out)

	for {
		if _, err := that.playGame(ctx, term); err != nil {
			return err
		}

		answer, err := term.ask("Another game (y/n)? ")
		if err != nil {
			return err
		}

		if !notation.IsYes(answer) {
			term.say("Thank you for playing!\n")
			return term.err
		}
	}
}

// playGame plays a single game to its end and returns the final outcome.
func (that *GameManager) playGame(ctx context.Context, term *console) (entity.Outcome, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to create game: %w", err)
	}

	current, err := game.New(gameID, that.variant)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.updateGame(ctx, current); err != nil {
		return entity.Outcome{}, err
	}

	log := that.logger.With("game_id", gameID)
	log.Info("game started")

	term.say("New game: %s goes first.\n\n", current.Turn)

	player := current.Turn
	for {
		if err = ctx.Err(); err != nil {
			return entity.Outcome{}, fmt.Errorf("game interrupted: %w", err)
		}

		term.say("%s", that.renderer.Board(current.Board, that.variant.Placement, nil))
		term.say("\n%s\n", that.renderer.Prompt(fmt.Sprintf("%s's turn.", player)))

		placed, outcome, err := that.readTurn(term, current, player)
		if err != nil {
			return entity.Outcome{}, err
		}

		log.Debug("move applied", "player", player, "row", placed.Row, "col", placed.Col)

		if err = that.updateGame(ctx, current); err != nil {
			return entity.Outcome{}, err
		}

		term.say("Thank you for your selection.\n\n")

		if outcome.IsFinished() {
			that.announce(term, current, outcome)
			that.deleteGame(ctx, log, current)

			log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner)

			return outcome, term.err
		}

		player = current.Turn
	}
}

// readTurn prompts player until a legal move is entered.
func (that *GameManager) readTurn(term *console, current *game.Game, player entity.Player) (entity.Move, entity.Outcome, error) {
	for {
		if that.variant.IsDrop() {
			term.say("Available positions are: %s\n", notation.FormatMoves(current.AvailableMoves(), that.variant.Placement))
		}

		text, err := term.ask(that.movePrompt(player))
		if err != nil {
			return entity.Move{}, entity.Outcome{}, err
		}

		move, err := notation.Parse(text, that.variant.Placement)
		if err != nil {
			that.logger.Debug("unreadable move", "input", text, "error", err)
			term.say("\n%s\n\n", that.renderer.Error(that.inputHint()))

			continue
		}

		placed, outcome, err := current.MakeTurn(player, move)
		if err != nil {
			if !isPlacementError(err) {
				return entity.Move{}, entity.Outcome{}, fmt.Errorf("failed to make turn: %w", err)
			}

			that.logger.Debug("move rejected", "player", player, "input", text, "error", err)
			term.say("%s\n", that.renderer.Error(that.rejection(move, err)))

			continue
		}

		if !that.variant.IsDrop() {
			term.say("\n%s", entered(placed))
		}

		return placed, outcome, nil
	}
}

func (that *GameManager) movePrompt(player entity.Player) string {
	if that.variant.IsDrop() {
		return "Please enter column-letter and row-number (e.g., a1): "
	}

	return fmt.Sprintf("Where do you want your %s placed?\nPlease enter row number and column number separated by a comma.\n", player)
}

func (that *GameManager) inputHint() string {
	if that.variant.IsDrop() {
		return "Invalid input. Please enter column-letter and row-number (e.g., a1)."
	}

	return "Invalid input. Please enter row,col (e.g., 0,0)"
}

func (that *GameManager) rejection(move entity.Move, err error) string {
	if that.variant.IsDrop() {
		return "Invalid entry: try again."
	}

	if errors.Is(err, apperror.ErrCellOccupied) {
		return entered(move) + "That cell is already taken.\nPlease make another selection.\n"
	}

	return fmt.Sprintf("%sInvalid entry: try again.\nRow & column numbers must be between 0 and %d.\n",
		entered(move), max(that.variant.Rows, that.variant.Cols)-1)
}

func (that *GameManager) announce(term *console, current *game.Game, outcome entity.Outcome) {
	if outcome.IsWin() {
		term.say("%s", that.renderer.Board(current.Board, that.variant.Placement, current.WinningLine()))
		term.say("\n%s IS THE WINNER!!!\n", outcome.Winner)

		return
	}

	term.say("DRAW! NOBODY WINS!\n")
	term.say("%s", that.renderer.Board(current.Board, that.variant.Placement, nil))
}

func (that *GameManager) updateGame(ctx context.Context, current *game.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, current); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, log *slog.Logger, current *game.Game) {
	if err := that.gameRepo.DeleteByID(ctx, current.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}
}

func entered(move entity.Move) string {
	return fmt.Sprintf("You have entered row #%d\n          and column #%d\n", move.Row, move.Col)
}

func isPlacementError(err error) bool {
	return errors.Is(err, apperror.ErrOutOfBounds) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrColumnFull)
}
