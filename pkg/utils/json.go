package utils

import (
	"fmt"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FlatField é um par chave/valor produzido por FlattenJSON
type FlatField struct {
	Key   string
	Value any
}

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		var v any
		if err = json.Unmarshal(raw, &v); err != nil {
			logrus.WithError(err).Debug("PrettyJson recebeu bytes que não são JSON")
			return string(raw)
		}
		in = v
	}

	buffer, err = json.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Debug("Falha ao serializar JSON")
		return fmt.Sprint(in)
	}

	return string(buffer)
}

// FlattenJSON achata objetos e listas em chaves pontuadas: a.b[0].c.
// As chaves de cada objeto saem em ordem alfabética.
func FlattenJSON(v any) []FlatField {
	var out []FlatField
	flatten(v, "", &out)
	return out
}

func flatten(v any, parent string, out *[]FlatField) {
	switch node := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			key := k
			if parent != "" {
				key = parent + "." + k
			}
			flatten(node[k], key, out)
		}
	case []any:
		for i, item := range node {
			flatten(item, parent+"["+strconv.Itoa(i)+"]", out)
		}
	default:
		*out = append(*out, FlatField{Key: parent, Value: node})
	}
}

// FormatScalar imprime valores JSON como o usuário espera ler: sem notação
// científica em números inteiros e "None" para nulos.
func FormatScalar(v any) string {
	switch s := v.(type) {
	case nil:
		return "None"
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		if s {
			return "True"
		}
		return "False"
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
