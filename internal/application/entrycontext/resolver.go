// Package entrycontext resuelve el contexto de llegada del usuario al portal:
// desde qué sistema externo llegó (source) y con qué giro de empresa declarado
// (companyType). Fusiona dos fuentes con precedencia documentada: el query
// string de la navegación actual (transitorio, prioridad alta) y el store de
// sesión (persistente entre navegaciones, prioridad baja).
package entrycontext

import "strings"

// Claves reconocidas en el query string de la navegación.
const (
	QuerySource      = "source"
	QueryCompanyType = "companyType"
)

// Claves del store de sesión (namespaced para no chocar con otros usos).
const (
	SessionKeySource      = "listing_entry_source"
	SessionKeyCompanyType = "listing_entry_company_type"
)

// Context es el contexto de llegada resuelto. Campo vacío = no suministrado;
// el resto del sistema trata "" exactamente como ausente.
type Context struct {
	Source      string `json:"source"`
	CompanyType string `json:"companyType"`
}

// Store es el puerto mínimo de clave-valor con alcance de sesión que necesita
// el resolver. En producción lo implementa la sesión de Fiber; en tests, un map.
type Store interface {
	Get(key string) string
	Set(key, value string)
}

// Normalize limpia un valor de entrada: recorta espacios y trata el texto
// centinela "undefined"/"null" (sin distinguir mayúsculas) como ausente.
// El centinela protege contra bugs de interpolación upstream que producen el
// texto literal en lugar de una ausencia real.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "undefined") || strings.EqualFold(s, "null") {
		return ""
	}
	return s
}

// Resolve calcula el contexto de llegada efectivo. Por cada campo,
// independientemente:
//  1. Lee y normaliza el query param.
//  2. Si vino, lo escribe en el store de sesión (pisa el valor anterior). El
//     write no afecta esta resolución, solo las futuras: stickiness
//     unidireccional, no un cache.
//  3. Valor efectivo: query si vino, si no el del store (normalizado), si no "".
//
// query es un lector de query params (ej. c.Query de Fiber). No hay errores.
func Resolve(query func(key string) string, store Store) Context {
	return Context{
		Source:      resolveField(query(QuerySource), SessionKeySource, store),
		CompanyType: resolveField(query(QueryCompanyType), SessionKeyCompanyType, store),
	}
}

func resolveField(rawQuery, sessionKey string, store Store) string {
	v := Normalize(rawQuery)
	if v != "" {
		store.Set(sessionKey, v)
		return v
	}
	return Normalize(store.Get(sessionKey))
}
