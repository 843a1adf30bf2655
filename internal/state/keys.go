// internal/state/keys.go
package state

// Служебные клавиши, которые драйвер передаёт в Input как руны.
const (
	KeyEscape    rune = '\x1b'
	KeyEnter     rune = '\r'
	KeyBackspace rune = '\b'
)
