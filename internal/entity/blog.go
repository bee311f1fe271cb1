package entity

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// AuthorRef is a blog's author reference. The remote API returns either the
// bare author id or an embedded user object depending on whether the list
// was populated; both decode to the id string.
type AuthorRef string

func (a *AuthorRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var user User
		if err := jsoniter.Unmarshal(data, &user); err != nil {
			return err
		}
		*a = AuthorRef(user.Normalize().ID)
		return nil
	}

	var id string
	if err := jsoniter.Unmarshal(data, &id); err != nil {
		return err
	}
	*a = AuthorRef(id)
	return nil
}

func (a AuthorRef) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(string(a))
}

// Blog is the client-side mirror of a remote blog record. Image holds either
// a remote URL or, for drafts that have not round-tripped yet, a base64 data
// URL. Slug is derived from the title and is not guaranteed unique.
type Blog struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Slug        string    `json:"slug"`
	Published   bool      `json:"published"`
	Author      AuthorRef `json:"author"`
}

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
