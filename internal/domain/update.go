package domain

// Update is one inbound event from the chat transport
type Update struct {
	ID      int64
	Message *Message
}

// Message is the text message carried by an update
type Message struct {
	ChatID       int64
	SenderHandle string
	Text         string
}
