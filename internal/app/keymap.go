package app

// Key binding constants used in handleKey.
const (
	KeyQuit       = "ctrl+c"
	KeySend       = "enter"
	KeyVoice      = "ctrl+r"
	KeyEsc        = "esc"
	KeyUpload     = "ctrl+u"
	KeyClear      = "ctrl+l"
	KeyFocusInput = "ctrl+k"
	KeyTab        = "tab"
	KeyCopy       = "ctrl+y"
	KeyPageUp     = "pgup"
	KeyPageDown   = "pgdown"
	KeyConfirm    = "y"
	KeyConfirmUp  = "Y"
)

// newlineKeys insert a line break in the composer instead of sending.
var newlineKeys = []string{"alt+enter", "ctrl+j"}
