package search

import (
	"sort"
	"strings"
)

// Candidate es un registro buscable: nombre visible + identificador
// secundario opcional (CPF u otro, en cualquier formato).
type Candidate struct {
	Key    string // id del registro, opaco para este paquete
	Name   string
	Digits string // identificador secundario; se canonicaliza a dígitos
}

// Match es un candidato con su puntaje de relevancia (> 0 siempre).
type Match struct {
	Candidate
	Score int
}

// Puntajes observados en las vistas de búsqueda; no cambiar sin migrar
// la UI que depende del orden resultante.
const (
	scoreNamePrefix   = 100
	scoreNameContains = 50
	scoreDigitsPrefix = 80
)

// Rank puntúa candidatos contra un término libre:
// - nombre empieza con el término (case-insensitive): +100
// - si no, nombre contiene el término: +50
// - término numérico es prefijo del identificador (solo dígitos): +80
// Los puntajes suman. Score 0 queda fuera. Orden: score desc,
// empates conservan el orden de entrada.
// Término vacío (tras trim) => nil; el caller decide qué mostrar (ver Filter).
func Rank(cands []Candidate, query string) []Match {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}
	numericTerm := onlyDigits(term)

	out := make([]Match, 0, len(cands))
	for _, c := range cands {
		name := strings.ToLower(c.Name)
		digits := onlyDigits(c.Digits)

		score := 0
		if strings.HasPrefix(name, term) {
			score += scoreNamePrefix
		} else if strings.Contains(name, term) {
			score += scoreNameContains
		}
		if numericTerm != "" && digits != "" && strings.HasPrefix(digits, numericTerm) {
			score += scoreDigitsPrefix
		}

		if score > 0 {
			out = append(out, Match{Candidate: c, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Filter aplica Rank y resuelve el caso de término vacío según la vista:
// la lista de pacientes muestra todo, el selector de paciente no muestra nada.
func Filter(cands []Candidate, query string, emptyShowsAll bool) []Match {
	if strings.TrimSpace(query) == "" {
		if !emptyShowsAll {
			return nil
		}
		out := make([]Match, 0, len(cands))
		for _, c := range cands {
			out = append(out, Match{Candidate: c})
		}
		return out
	}
	return Rank(cands, query)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
