package entrycontext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/listing-portal/internal/application/entrycontext"
)

// mapStore store de sesión en memoria para tests.
type mapStore map[string]string

func (m mapStore) Get(key string) string { return m[key] }

func (m mapStore) Set(key, value string) { m[key] = value }

func queryOf(params map[string]string) func(string) string {
	return func(key string) string { return params[key] }
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_CentinelasYEspacios(t *testing.T) {
	cases := map[string]string{
		"admin":       "admin",
		"  admin  ":   "admin",
		"":            "",
		"   ":         "",
		"undefined":   "",
		"UNDEFINED":   "",
		" Undefined ": "",
		"null":        "",
		"NULL":        "",
		"Textile":     "Textile",
	}
	for in, want := range cases {
		assert.Equal(t, want, entrycontext.Normalize(in), "entrada %q", in)
	}
}

// El valor centinela en query resuelve exactamente igual que el parámetro ausente.
func TestResolve_CentinelaEquivaleAAusente(t *testing.T) {
	storeA := mapStore{}
	gotA := entrycontext.Resolve(queryOf(map[string]string{"source": "undefined"}), storeA)

	storeB := mapStore{}
	gotB := entrycontext.Resolve(queryOf(nil), storeB)

	assert.Equal(t, gotB, gotA)
	assert.Empty(t, storeA, "el centinela no debe escribirse en sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge de dos fuentes con stickiness
// ──────────────────────────────────────────────────────────────────────────────

// Primera llegada con query params; navegación posterior sin ellos sigue
// viendo los mismos valores (stickiness vía sesión).
func TestResolve_Stickiness(t *testing.T) {
	store := mapStore{}

	first := entrycontext.Resolve(queryOf(map[string]string{
		"source":      "admin",
		"companyType": "Textile",
	}), store)
	assert.Equal(t, "admin", first.Source)
	assert.Equal(t, "Textile", first.CompanyType)

	second := entrycontext.Resolve(queryOf(nil), store)
	assert.Equal(t, "admin", second.Source)
	assert.Equal(t, "Textile", second.CompanyType)
}

// El query de la navegación actual gana sobre el valor persistido y lo pisa.
func TestResolve_QueryPisaSesion(t *testing.T) {
	store := mapStore{
		entrycontext.SessionKeySource: "dashboard",
	}

	got := entrycontext.Resolve(queryOf(map[string]string{"source": "admin"}), store)
	assert.Equal(t, "admin", got.Source)
	assert.Equal(t, "admin", store[entrycontext.SessionKeySource], "la sesión queda pisada para futuras resoluciones")
}

// Cada campo se resuelve de forma independiente: uno del query, otro de sesión.
func TestResolve_CamposIndependientes(t *testing.T) {
	store := mapStore{
		entrycontext.SessionKeyCompanyType: "Media",
	}

	got := entrycontext.Resolve(queryOf(map[string]string{"source": "admin"}), store)
	assert.Equal(t, "admin", got.Source)
	assert.Equal(t, "Media", got.CompanyType)
}

// Sin query y sin sesión: ambos campos ausentes ("" explícito, nunca null).
func TestResolve_TodoAusente(t *testing.T) {
	got := entrycontext.Resolve(queryOf(nil), mapStore{})
	assert.Equal(t, entrycontext.Context{}, got)
}

// Un valor centinela persistido en sesión (bug upstream) también se normaliza.
func TestResolve_CentinelaEnSesion(t *testing.T) {
	store := mapStore{
		entrycontext.SessionKeySource: "undefined",
	}
	got := entrycontext.Resolve(queryOf(nil), store)
	assert.Empty(t, got.Source)
}
