package htmx

// SwapStrategy is an hx-swap value sent back in HX-Reswap.
type SwapStrategy string

// The contact form swaps itself (outerHTML); error pages replace the body
// contents (innerHTML).
const (
	SwapInnerHTML SwapStrategy = "innerHTML"
	SwapOuterHTML SwapStrategy = "outerHTML"
	SwapNone      SwapStrategy = "none"
)
