package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconTrash    = "" // trash
	IconDatabase = "" // database
	IconConfig   = "" // config
	IconClock    = "" // clock
	IconCode     = "" // code
	IconCursor   = "" // chevron-right

	// Dialog kinds
	IconAlert        = "" // bell
	IconConfirm      = "" // question-circle
	IconPrompt       = "" // keyboard
	IconBeforeUnload = "" // sign-out
)
