package services

import "math/rand/v2"

var funnyTaglines = [...]string{
	"P.S. I asked a squirrel for feedback. It said 'nuts about it!'",
	"Disclaimer: I was trained by cats, so occasional meows may appear.",
	"Fun fact: this response contains zero calories.",
	"I also consulted a goldfish, it promptly forgot.",
	"Warning: may cause uncontrollable nodding.",
}

// FunnyTaglines returns a copy of the fixed tagline list.
func FunnyTaglines() []string {
	out := make([]string, len(funnyTaglines))
	copy(out, funnyTaglines[:])
	return out
}

// PickFunny returns one tagline chosen uniformly at random.
func PickFunny() string {
	return funnyTaglines[rand.IntN(len(funnyTaglines))]
}
