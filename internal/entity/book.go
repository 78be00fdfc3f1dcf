package entity

// Book is a catalogue entry. ID is assigned by the repository on creation.
// A book is unavailable exactly while one unreturned loan references it.
type Book struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Available bool   `json:"available"`
}
