package game

import (
	"github.com/pkg/errors"

	"github.com/six78/arbiter-client/pkg/challenge"
	"github.com/six78/arbiter-client/pkg/challenge/hashcash"
	"github.com/six78/arbiter-client/pkg/challenge/maze"
	"github.com/six78/arbiter-client/pkg/challenge/secret"
	"github.com/six78/arbiter-client/pkg/protocol"
)

// solver builds a challenge from its input and solves it. It also returns
// the solver name for logging.
type solver func(input protocol.ChallengeInput) (protocol.ChallengeOutput, string, error)

func newSolver[I protocol.ChallengeInput, O protocol.ChallengeOutput](construct func(I) challenge.Challenge[O]) solver {
	return func(input protocol.ChallengeInput) (protocol.ChallengeOutput, string, error) {
		typed, ok := input.(I)
		if !ok {
			return nil, "", errors.Errorf("unexpected challenge input %T", input)
		}
		c := construct(typed)
		return c.Solve(), c.Name(), nil
	}
}

func (g *Game) defaultSolvers() map[protocol.ChallengeKind]solver {
	return map[protocol.ChallengeKind]solver{
		protocol.ChallengeKindMD5HashCash: newSolver(func(input protocol.MD5HashCashInput) challenge.Challenge[protocol.MD5HashCashOutput] {
			return hashcash.New(input, g.random)
		}),
		protocol.ChallengeKindMonstrousMaze: newSolver(func(input protocol.MonstrousMazeInput) challenge.Challenge[protocol.MonstrousMazeOutput] {
			return maze.New(input)
		}),
		protocol.ChallengeKindRecoverSecret: newSolver(func(input protocol.RecoverSecretInput) challenge.Challenge[protocol.RecoverSecretOutput] {
			return secret.New(input)
		}),
	}
}
