package metadomain

// Page é uma página monetizada retornada pela listagem de contas.
// Cada página carrega seu próprio token de acesso, retornado junto da
// listagem; o token de sistema autoriza apenas a listagem.
type Page struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

func (p Page) EntityID() string {
	return p.ID
}

// Paging é o cursor de paginação da API Graph. A listagem só termina quando
// Next está ausente.
type Paging struct {
	Next string `json:"next,omitempty"`
}

// ListPagesResponse é a resposta da listagem de páginas.
type ListPagesResponse struct {
	Data   []Page        `json:"data"`
	Paging *Paging       `json:"paging,omitempty"`
	Error  *ErrorDetails `json:"error,omitempty"`
}
