// Package league implements the simulation core of a basketball
// franchise management game: league generation, a possession-level game
// simulator, the season phase machine, trades, the draft, free agency,
// and player development.
//
// All randomness derives from the master seed through labeled streams, so
// a league replayed from the same seed produces identical results no
// matter how the calendar is advanced or how often the state is saved and
// reloaded. Frontends drive the engine exclusively through Apply and the
// Command variants.
package league
