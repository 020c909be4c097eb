package ytclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-report-api/internal/config"

	ytdomain "github.com/vfg2006/earnings-report-api/infrastructure/integrator/youtube/domain"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const channelListLimit = "50"

// Client expõe as chamadas às APIs do YouTube usadas na montagem do relatório
// de faturamento.
type Client interface {
	ListChannels(accessToken string) ([]ytdomain.Channel, error)
	QueryChannelReport(accessToken, channelID, since, until string) ([]ytdomain.ReportRow, error)
}

type client struct {
	config     *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListChannels percorre todos os canais administrados pelo content owner,
// drenando o cursor de paginação até o fim da listagem.
func (c *client) ListChannels(accessToken string) ([]ytdomain.Channel, error) {
	channels := make([]ytdomain.Channel, 0)
	pageToken := ""

	for {
		endpoint := fmt.Sprintf("%s/channels?part=snippet&managedByMe=true&onBehalfOfContentOwner=%s&maxResults=%s",
			c.config.YouTube.APIBaseURL, url.QueryEscape(c.config.YouTube.ContentOwnerID), channelListLimit)
		if pageToken != "" {
			endpoint += "&pageToken=" + url.QueryEscape(pageToken)
		}

		body, err := c.doRequest(endpoint, accessToken)
		if err != nil {
			return nil, err
		}

		response := &ytdomain.ChannelListResponse{}
		if err := json.Unmarshal(body, response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar listagem de canais do YouTube")
		}

		if response.Error != nil {
			return nil, response.Error
		}

		channels = append(channels, response.Items...)

		if response.NextPageToken == "" {
			return channels, nil
		}

		pageToken = response.NextPageToken
	}
}

// QueryChannelReport consulta o relatório diário de um canal dentro da janela
// informada, no escopo do content owner.
func (c *client) QueryChannelReport(accessToken, channelID, since, until string) ([]ytdomain.ReportRow, error) {
	endpoint := fmt.Sprintf(
		"%s/reports?ids=contentOwner==%s&dimensions=%s&metrics=%s&filters=channel==%s&startDate=%s&endDate=%s&sort=%s",
		c.config.YouTube.AnalyticsBaseURL,
		url.QueryEscape(c.config.YouTube.ContentOwnerID),
		ytdomain.DimensionDay,
		ytdomain.ReportMetrics,
		url.QueryEscape(channelID),
		since,
		until,
		ytdomain.DimensionDay,
	)

	body, err := c.doRequest(endpoint, accessToken)
	if err != nil {
		return nil, err
	}

	response := &ytdomain.ReportResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar relatório do canal %s", channelID)
	}

	if response.Error != nil {
		return nil, response.Error
	}

	return response.TypedRows(), nil
}

func (c *client) doRequest(endpoint, accessToken string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar requisição para a API do YouTube")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar a API do YouTube")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da API do YouTube")
	}

	return body, nil
}
