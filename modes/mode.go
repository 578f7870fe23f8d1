package modes

type Mode uint8

const (
	ModeDevelopment Mode = iota
	ModeProduction
)
