package game

import (
	"github.com/google/uuid"
)

type SessionID string

func GenerateSessionID() SessionID {
	return SessionID(uuid.New().String())
}
