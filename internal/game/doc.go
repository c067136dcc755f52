// Package game implements the Go Fish turn engine and win resolution.
//
// The main type is GameState, which owns the deck and every player's hand,
// pairs pile and score for a single game.
//
// # Basic Usage
//
//	g, err := game.New(4, game.WithRand(randutil.New(42)))
//	if err != nil {
//	    return err
//	}
//	g.Deal()
//	outcome, err := g.RunGame(ctx)
//
// # Deterministic Testing
//
// Sequential mode consults no randomness: every ask uses the first card of
// the acting player's hand and targets the next player. Combined with the
// unshuffled standard deck a game is fully reproducible:
//
//	g, _ := game.NewWithDeck(4, cards.NewStandardDeck(), game.Sequential)
//
// Random mode is reproducible too when the RNG is injected with WithRand.
//
// # Architecture
//
// GameState delegates to small components:
//   - Selector: picks the card index and target player for an ask
//   - AskForCard: moves one card of the asked rank between hands
//   - Player.MatchPairs: moves completed pairs into the pairs pile
//   - CheckWinCondition / DetermineWinner: detect the end and rank players
//
// Every outcome type (AskResult, TurnResult, EndGameCondition) is a closed
// set matched exhaustively by its consumers.
package game
