package providers

import (
	"eternalquest/internal/structures"
	"os"
)

func NewConsoleProvider() *structures.Console {
	return &structures.Console{In: os.Stdin, Out: os.Stdout}
}
