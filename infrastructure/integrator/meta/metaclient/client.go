package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-report-api/internal/config"
	"github.com/vfg2006/earnings-report-api/internal/domain"

	metadomain "github.com/vfg2006/earnings-report-api/infrastructure/integrator/meta/domain"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pageListLimit = "100"

// Client expõe as chamadas à API Graph usadas na montagem do relatório de
// faturamento.
type Client interface {
	ListPages(systemToken string) ([]metadomain.Page, error)
	GetPageMetric(page metadomain.Page, metric, since, until string) ([]domain.MetricSample, error)
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

// ListPages percorre todas as páginas administradas pelo token de sistema,
// drenando o cursor de paginação até o fim da listagem.
func (c *client) ListPages(systemToken string) ([]metadomain.Page, error) {
	endpoint := fmt.Sprintf("%s/me/accounts?fields=id,name,access_token&limit=%s&access_token=%s",
		c.config.Meta.URL, pageListLimit, url.QueryEscape(systemToken))

	pages := make([]metadomain.Page, 0)

	for endpoint != "" {
		response, err := c.fetchPageList(endpoint)
		if err != nil {
			return nil, err
		}

		pages = append(pages, response.Data...)

		endpoint = ""
		if response.Paging != nil {
			endpoint = response.Paging.Next
		}
	}

	return pages, nil
}

func (c *client) fetchPageList(endpoint string) (*metadomain.ListPagesResponse, error) {
	body, err := c.doRequest(endpoint)
	if err != nil {
		return nil, err
	}

	response := &metadomain.ListPagesResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar listagem de páginas do Meta")
	}

	if response.Error != nil {
		return nil, response.Error
	}

	return response, nil
}

// GetPageMetric consulta a série diária de uma métrica de página dentro da
// janela informada, autenticada com o token da própria página.
func (c *client) GetPageMetric(page metadomain.Page, metric, since, until string) ([]domain.MetricSample, error) {
	endpoint := fmt.Sprintf("%s/%s/insights?metric=%s&period=%s&since=%s&until=%s&access_token=%s",
		c.config.Meta.URL, page.ID, metric, metadomain.PeriodDay, since, until,
		url.QueryEscape(page.AccessToken))

	body, err := c.doRequest(endpoint)
	if err != nil {
		return nil, err
	}

	response := &metadomain.InsightsResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar métrica %s da página %s", metric, page.ID)
	}

	if response.Error != nil {
		return nil, response.Error
	}

	return response.Samples(), nil
}

func (c *client) doRequest(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar requisição para a API do Meta")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar a API do Meta")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da API do Meta")
	}

	return body, nil
}
