package world

import (
	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/throttle"
)

type logged struct {
	World
	log logger.Logger
}

// Logged wraps w so every control call is logged at debug level.
func Logged(w World, log logger.Logger) World {
	return &logged{World: w, log: log}
}

func (l *logged) Control(t throttle.Throttle, pressed bool) {
	l.log.Debug("control", logger.F("throttle", t), logger.F("pressed", pressed))
	l.World.Control(t, pressed)
}
