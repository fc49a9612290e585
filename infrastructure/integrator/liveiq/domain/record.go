package liveiqdomain

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMalformedPayload = errors.New("resposta da LiveIQ em formato inesperado")

// APIError representa uma resposta 2xx que traz um campo "error"
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro retornado pela LiveIQ: %s", e.Message)
}

// Record é um objeto JSON devolvido pela LiveIQ. Os nomes de campo variam
// entre endpoints, por isso os acessores aceitam nomes alternativos.
type Record map[string]any

// DecodeRecords aceita {"data": [...]}, {"data": {...}}, [...], {...} e null
func DecodeRecords(payload []byte) ([]Record, error) {
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if obj, ok := raw.(map[string]any); ok {
		if msg := errorMessage(obj["error"]); msg != "" {
			return nil, &APIError{Message: msg}
		}
		if data, ok := obj["data"]; ok {
			raw = data
		}
	}

	return toRecords(raw)
}

// DecodeFirst devolve o primeiro registro (ou um registro vazio)
func DecodeFirst(payload []byte) (Record, error) {
	records, err := DecodeRecords(payload)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return Record{}, nil
	}
	return records[0], nil
}

// DecodeValue devolve o payload como valor genérico (objetos, listas e escalares)
func DecodeValue(payload []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if obj, ok := raw.(map[string]any); ok {
		if msg := errorMessage(obj["error"]); msg != "" {
			return nil, &APIError{Message: msg}
		}
	}
	return raw, nil
}

func toRecords(raw any) ([]Record, error) {
	switch v := raw.(type) {
	case nil:
		return []Record{}, nil
	case map[string]any:
		return []Record{Record(v)}, nil
	case []any:
		records := make([]Record, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			records = append(records, Record(obj))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: tipo %T", ErrMalformedPayload, raw)
	}
}

func errorMessage(v any) string {
	switch e := v.(type) {
	case nil:
		return ""
	case string:
		return e
	case bool:
		if e {
			return "erro sem descrição"
		}
		return ""
	default:
		b, _ := json.Marshal(e)
		return string(b)
	}
}

func (r Record) lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r Record) Has(key string) bool {
	_, ok := r.lookup(key)
	return ok
}

// Float retorna o primeiro campo numérico presente entre keys
func (r Record) Float(keys ...string) float64 {
	v, ok := r.lookup(keys...)
	if !ok {
		return 0
	}
	return toFloat(v)
}

func (r Record) Int(keys ...string) int {
	return int(math.Round(r.Float(keys...)))
}

// String retorna o primeiro campo presente entre keys, convertendo números sem casas decimais
func (r Record) String(keys ...string) string {
	v, ok := r.lookup(keys...)
	if !ok {
		return ""
	}

	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}

// StringOr é String com valor padrão para campo ausente ou vazio
func (r Record) StringOr(def string, keys ...string) string {
	if s := r.String(keys...); s != "" {
		return s
	}
	return def
}

// Records retorna a lista de objetos aninhada em key
func (r Record) Records(key string) []Record {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	records, err := toRecords(v)
	if err != nil {
		return nil
	}
	return records
}

var preferredDateKeys = []string{"businessDate", "date", "transactionDate", "salesDate", "reportDate"}

// DateKey devolve a data (YYYY-MM-DD) do registro. Procura primeiro os nomes
// conhecidos e depois qualquer chave que contenha "date", em ordem alfabética.
func (r Record) DateKey() string {
	for _, k := range preferredDateKeys {
		if r.Has(k) {
			return datePart(r.String(k))
		}
	}

	keys := make([]string, 0, len(r))
	for k := range r {
		if strings.Contains(strings.ToLower(k), "date") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if r.Has(k) {
			return datePart(r.String(k))
		}
	}

	return ""
}

func datePart(s string) string {
	if i := strings.Index(s, "T"); i >= 0 {
		return s[:i]
	}
	return s
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case jsoniter.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if n {
			return 1
		}
	}
	return 0
}
