package ytdomain

// Snippet traz os metadados exibíveis de um canal.
type Snippet struct {
	Title string `json:"title"`
}

// Channel é um canal administrado pelo content owner.
type Channel struct {
	ID      string  `json:"id"`
	Snippet Snippet `json:"snippet"`
}

func (c Channel) EntityID() string {
	return c.ID
}

// ChannelListResponse é a resposta paginada da listagem de canais.
type ChannelListResponse struct {
	Items         []Channel     `json:"items"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
	Error         *ErrorDetails `json:"error,omitempty"`
}
