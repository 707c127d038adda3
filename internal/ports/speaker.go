package ports

// Speaker delivers the text of a selected item to the user
type Speaker interface {
	Speak(text string) error
}
