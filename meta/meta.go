// meta/meta.go
package meta

// DEFAULT_DEPTH defines the search depth of a minimax agent when none is given.
const DEFAULT_DEPTH = 3

// MAX_TURNS defines the number of moves after which a game is stopped unfinished.
const MAX_TURNS = 200

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10
