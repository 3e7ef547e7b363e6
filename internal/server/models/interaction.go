package models

import "time"

// Comment is a timestamped note on a service item or task.
type Comment struct {
	ID      string
	OwnerID string
	Text    string
	Author  string
	Date    time.Time
}

// Attachment points at an uploaded object. OwnerID is the item, task,
// contract or measurement it belongs to.
type Attachment struct {
	ID         string
	OwnerID    string
	Name       string
	URL        string
	Type       string
	UploadedBy string
	Date       time.Time
}

// Upload is a file received from a client, before it reaches storage.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}
