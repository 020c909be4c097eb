package domain

import "time"

// Chaves fixas usadas no config store.
const (
	KeyMetaAPIConfig   = "metaApiConfig"
	KeyExcludedPageIDs = "excludedPageIds"
	KeyYouTubeTokens   = "youtubeTokens"
	KeyMTDData         = "mtdData"
	KeyLast7DaysData   = "last7DaysData"
)

// MicroCurrency é a representação monetária em inteiro escalado usada pela
// API de insights sociais. O valor canônico em USD é MicroAmount / 100_000_000.
type MicroCurrency struct {
	CurrencyCode string `json:"currency"`
	MicroAmount  int64  `json:"microAmount"`
}

// MetricSample é uma amostra diária de uma métrica para uma entidade.
// Imutável depois de buscada. Quando a métrica é monetária e a origem usa
// micro-moeda, Micro é preenchido; caso contrário Value carrega o número puro.
type MetricSample struct {
	Date  string
	Value float64
	Micro *MicroCurrency
}

// DailyPoint é um ponto (data, valor) de uma série diária de uma única
// métrica, já convertida para a unidade canônica.
type DailyPoint struct {
	Date  string
	Value float64
}

// DailyTotal é o total diário somado entre todas as entidades incluídas.
// Datas são strings YYYY-MM-DD, portanto a ordenação lexicográfica equivale
// à ordenação cronológica.
type DailyTotal struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Views   int64   `json:"views"`
}

// EntityRecord é o registro canônico por página/canal para um período.
type EntityRecord struct {
	ID              string  `json:"id"`
	DisplayName     string  `json:"name"`
	Revenue         float64 `json:"revenue"`
	Views           int64   `json:"views"`
	RPM             float64 `json:"rpm"`
	CPM             float64 `json:"cpm,omitempty"`
	WatchHours      float64 `json:"watchHours,omitempty"`
	SubscriberDelta int64   `json:"subscribers,omitempty"`
	Engagements     int64   `json:"engagements,omitempty"`
}

func (e EntityRecord) EntityID() string {
	return e.ID
}

// PeriodReport é o resultado da agregação de uma plataforma para um período:
// entidades ordenadas por receita decrescente e a série diária ordenada por
// data crescente.
type PeriodReport struct {
	Entities []EntityRecord `json:"entities"`
	Daily    []DailyTotal   `json:"daily"`
}

// EmptyPeriodReport retorna um relatório vazio, usado quando a busca de uma
// plataforma falha por completo sem abortar a outra.
func EmptyPeriodReport() *PeriodReport {
	return &PeriodReport{
		Entities: make([]EntityRecord, 0),
		Daily:    make([]DailyTotal, 0),
	}
}

// CombinedReport agrupa os relatórios das duas plataformas sem mesclá-los:
// o esquema persistido mantém os campos separados por plataforma.
type CombinedReport struct {
	Facebook *PeriodReport
	YouTube  *PeriodReport
}

// StoredReport é o valor persistido no config store para uma janela fixa.
// Uma escrita substitui integralmente o valor anterior da chave.
type StoredReport struct {
	Month         string         `json:"month,omitempty"`
	Since         string         `json:"since,omitempty"`
	Until         string         `json:"until,omitempty"`
	LastUpdated   time.Time      `json:"lastUpdated"`
	Facebook      []EntityRecord `json:"facebook"`
	FacebookDaily []DailyTotal   `json:"facebookDaily"`
	YouTube       []EntityRecord `json:"youtube"`
	YouTubeDaily  []DailyTotal   `json:"youtubeDaily"`
}

// MetaCredential é a credencial do sistema lida do config store no início de
// cada execução ("metaApiConfig"). Não existe cache mutável em memória.
type MetaCredential struct {
	SystemToken string `json:"systemToken"`
}

// YouTubeTokenSet é o conjunto de tokens OAuth persistido em "youtubeTokens".
// A renovação acontece na fronteira do token source, fora do pipeline.
type YouTubeTokenSet struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	Expiry       time.Time `json:"expiry"`
}

// ExclusionConfig mapeia o rótulo de um período ("January 2026") para os IDs
// de entidades excluídas daquele período.
type ExclusionConfig map[string][]string
