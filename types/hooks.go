package types

// Hooks defines optional observer callbacks fired by allocation protocols.
//
// Hooks are called synchronously from the protocol's single goroutine. They
// receive copies of protocol state and their return values are ignored, so an
// observer can never influence which goods are chosen.
//
// Example:
//
//	hooks := &types.Hooks{
//	    OnTrace: func(msg string) { fmt.Println(msg) },
//	    OnPick: func(turn int, family string, good types.Good) {
//	        log.Printf("turn %d: %s picks %s", turn, family, good)
//	    },
//	}
type Hooks struct {
	// OnTrace receives a human-readable line at each protocol decision point.
	OnTrace func(msg string)

	// OnPick is called after a family takes a good in a turn-based protocol.
	// Turns are numbered from 1.
	OnPick func(turn int, family string, good Good)
}
