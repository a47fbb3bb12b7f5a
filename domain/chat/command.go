package chat

type SendMessageCommand struct {
	Username    string
	Room        string
	Content     string
	Destination string
}

// IsExit tells whether the command is the legacy leave alias.
func (c SendMessageCommand) IsExit() bool {
	return c.Content == ExitSentinel
}

type ReceiveMessagesCommand struct {
	Username string
	Room     string
	AfterSeq uint64
}

// JoinResult is what a user gets back when entering a room: the newest
// messages addressed to them, structured and pre-rendered.
type JoinResult struct {
	History  []Message
	Rendered []string
}
