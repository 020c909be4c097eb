package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/earnings-report-api/infrastructure/database/postgres"
)

const configTable = "config"

// ConfigStore é a fronteira de persistência chave-valor do sistema: leitura
// de credenciais e exclusões, escrita dos relatórios agregados. Get retorna
// (nil, nil) quando a chave não existe. Put substitui integralmente o valor
// anterior (upsert, nunca merge).
type ConfigStore interface {
	Get(key string) (json.RawMessage, error)
	GetInto(key string, out any) (bool, error)
	Put(key string, value any) error
	Delete(key string) error
}

type configStore struct {
	conn postgres.Conn
}

func NewConfigStore(conn postgres.Conn) (ConfigStore, error) {
	store := &configStore{conn: conn}

	if err := store.ensureSchema(); err != nil {
		return nil, err
	}

	return store, nil
}

// ensureSchema cria a tabela de configuração na inicialização
func (s *configStore) ensureSchema() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS config (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("erro ao criar tabela de configuração: %w", err)
	}

	return nil
}

func (s *configStore) Get(key string) (json.RawMessage, error) {
	query, args, err := squirrel.
		Select("value").
		From(configTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value []byte

	row := s.conn.QueryRow(query, args...)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler chave %q: %w", key, err)
	}

	return json.RawMessage(value), nil
}

// GetInto lê e desserializa o valor da chave. Retorna false quando a chave
// não existe.
func (s *configStore) GetInto(key string, out any) (bool, error) {
	raw, err := s.Get(key)
	if err != nil {
		return false, err
	}

	if raw == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("erro ao desserializar valor da chave %q: %w", key, err)
	}

	return true, nil
}

func (s *configStore) Put(key string, value any) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao serializar valor da chave %q: %w", key, err)
	}

	query := squirrel.StatementBuilder.
		Insert(configTable).
		Columns("key", "value", "updated_at").
		Values(key, valueJSON, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = s.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (s *configStore) Delete(key string) error {
	query, args, err := squirrel.
		Delete(configTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := s.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover chave %q: %w", key, err)
	}

	return nil
}
