package chat

// User is an entry of the user directory. CurrentRoom is empty when the user
// is in no room.
type User struct {
	Username    string
	CurrentRoom string
}

func (u User) InRoom() bool {
	return u.CurrentRoom != ""
}
