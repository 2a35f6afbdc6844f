// Package deck loads slide decks from TOML manifests.
//
// A deck file declares presentation-wide settings and an ordered list of
// slides:
//
//	title = "Quarterly review"
//
//	[settings]
//	orientation = "horizontal"
//	align       = "center"
//	loop        = true
//	gap         = 2
//	slide_width = 40
//
//	[[slides]]
//	title = "Welcome"
//	body  = "Hello!"
//
//	[[slides]]
//	title = "Numbers"
//	body  = "Up and to the right."
//	width = 60
//
// Load validates the manifest and assigns stable identifiers to slides that
// don't declare one. The resulting Deck converts directly into carousel
// slide specs and options via [Deck.Specs] and [Deck.Options].
package deck
