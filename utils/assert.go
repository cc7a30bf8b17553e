package utils

// Assert panics with the given message when condition does not hold. It is
// reserved for invariants that can only break through a programming error.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
