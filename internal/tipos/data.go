// Package tipos reúne tipos de coluna compartilhados pelos modelos.
package tipos

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const layoutData = "2006-01-02"

// Data é uma data de calendário sem componente de hora. Na API ela
// trafega como "AAAA-MM-DD"; no banco é uma coluna date.
type Data struct {
	time.Time
}

// NovaData normaliza o instante para meia-noite UTC.
func NovaData(t time.Time) Data {
	return Data{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// DataDe monta uma Data a partir de ano, mês e dia.
func DataDe(ano int, mes time.Month, dia int) Data {
	return Data{time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// Hoje é a data de calendário local do servidor.
func Hoje() Data {
	return NovaData(time.Now())
}

// ParseData interpreta "AAAA-MM-DD".
func ParseData(s string) (Data, error) {
	t, err := time.Parse(layoutData, strings.TrimSpace(s))
	if err != nil {
		return Data{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return Data{t}, nil
}

func (d Data) String() string {
	return d.Format(layoutData)
}

// AddDias devolve a data deslocada em dias corridos.
func (d Data) AddDias(dias int) Data {
	return NovaData(d.AddDate(0, 0, dias))
}

// DiasAte conta os dias corridos de d até outra data. Negativo quando
// outra é anterior.
func (d Data) DiasAte(outra Data) int {
	return int(outra.Time.Sub(d.Time).Hours() / 24)
}

func (d Data) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(layoutData) + `"`), nil
}

func (d *Data) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Data{}
		return nil
	}
	// Aceita também timestamps RFC3339 enviados por clientes antigos.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*d = NovaData(t)
		return nil
	}
	parsed, err := ParseData(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Data) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Data) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Data{}
	case time.Time:
		*d = NovaData(v)
	case string:
		parsed, err := ParseData(v[:min(len(v), 10)])
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("tipo inesperado para Data: %T", value)
	}
	return nil
}

// GormDataType mapeia Data para coluna date.
func (Data) GormDataType() string {
	return "date"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
