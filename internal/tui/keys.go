package tui

import "strconv"

// KeyHandler accumulates a vim-style numeric count that multiplies the next
// movement or scroll key.
type KeyHandler struct {
	buffer string
}

// Push appends a digit to the count buffer. A leading zero is ignored so
// "0" stays available as a plain key.
func (k *KeyHandler) Push(digit rune) bool {
	if digit < '0' || digit > '9' {
		return false
	}
	if k.buffer == "" && digit == '0' {
		return false
	}
	if len(k.buffer) < 4 {
		k.buffer += string(digit)
	}
	return true
}

// Count consumes the buffer and returns the pending count, defaulting to 1.
func (k *KeyHandler) Count() int {
	if k.buffer == "" {
		return 1
	}
	n, err := strconv.Atoi(k.buffer)
	k.buffer = ""
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Buffer returns the pending digits for display.
func (k *KeyHandler) Buffer() string {
	return k.buffer
}

// Reset drops any pending count.
func (k *KeyHandler) Reset() {
	k.buffer = ""
}
