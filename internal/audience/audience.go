// Package audience decides who may see a chat message. A message with no
// recipient is a broadcast; otherwise only its two participants see it.
package audience

// IsBroadcast reports whether recipientID addresses everybody.
func IsBroadcast(recipientID string) bool {
	return recipientID == ""
}

// Visible reports whether viewer may see a message from senderID to
// recipientID ("" for broadcast).
func Visible(senderID, recipientID, viewer string) bool {
	if IsBroadcast(recipientID) {
		return true
	}
	return viewer != "" && (viewer == senderID || viewer == recipientID)
}

// Between reports whether a private message belongs to the conversation of
// me and peer, in either direction.
func Between(senderID, recipientID, me, peer string) bool {
	if IsBroadcast(recipientID) {
		return false
	}
	return (senderID == me && recipientID == peer) || (senderID == peer && recipientID == me)
}

// Notifies reports whether an incoming message should bump the unread
// counter of viewer: it must be addressed to viewer (or everybody) and not
// be viewer's own message.
func Notifies(senderID, recipientID, viewer string) bool {
	if senderID == viewer {
		return false
	}
	return IsBroadcast(recipientID) || recipientID == viewer
}
